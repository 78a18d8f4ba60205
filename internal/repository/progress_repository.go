package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StaleCandidate is a pending or in-progress row joined with the expiry
// window of its position's config.
type StaleCandidate struct {
	model.PersonTestProgress
	TestCodeExpiryDays int
}

type ProgressRepository interface {
	// CreateIgnoreConflicts inserts the given rows, silently skipping any
	// that collide on (person_id, test_id). Returns the number created.
	CreateIgnoreConflicts(ctx context.Context, rows []model.PersonTestProgress) (int64, error)
	FindByPersonAndTest(ctx context.Context, personID, testID uint) (*model.PersonTestProgress, error)
	ListByPersonAndPosition(ctx context.Context, personID, positionID uint) ([]model.PersonTestProgress, error)
	ListByPersonAndTests(ctx context.Context, personID uint, testIDs []uint) ([]model.PersonTestProgress, error)
	StaleCandidates(ctx context.Context) ([]StaleCandidate, error)
	// MarkExpired flips the given rows to expired unless they already
	// reached a terminal state. Returns the number actually expired.
	MarkExpired(ctx context.Context, ids []uint) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) CreateIgnoreConflicts(ctx context.Context, rows []model.PersonTestProgress) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "person_id"}, {Name: "test_id"}},
		DoNothing: true,
	}).Create(&rows)
	return tx.RowsAffected, tx.Error
}

func (r *progressRepository) FindByPersonAndTest(ctx context.Context, personID, testID uint) (*model.PersonTestProgress, error) {
	var row model.PersonTestProgress
	err := r.db.WithContext(ctx).
		Preload("Test").
		Where("person_id = ? AND test_id = ?", personID, testID).
		First(&row).Error
	return &row, err
}

func (r *progressRepository) ListByPersonAndPosition(ctx context.Context, personID, positionID uint) ([]model.PersonTestProgress, error) {
	var rows []model.PersonTestProgress
	err := r.db.WithContext(ctx).
		Preload("Test").
		Where("person_id = ? AND position_id = ?", personID, positionID).
		Order("assigned_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *progressRepository) ListByPersonAndTests(ctx context.Context, personID uint, testIDs []uint) ([]model.PersonTestProgress, error) {
	if len(testIDs) == 0 {
		return nil, nil
	}
	var rows []model.PersonTestProgress
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND test_id IN ?", personID, testIDs).
		Find(&rows).Error
	return rows, err
}

// StaleCandidates returns every non-terminal row whose position has a
// finite expiry window. The cutoff comparison happens in the service so
// the query stays portable across dialects.
func (r *progressRepository) StaleCandidates(ctx context.Context) ([]StaleCandidate, error) {
	var rows []StaleCandidate
	err := r.db.WithContext(ctx).
		Model(&model.PersonTestProgress{}).
		Select("person_test_progresses.*, position_evaluation_configs.test_code_expiry_days").
		Joins("JOIN position_evaluation_configs ON position_evaluation_configs.position_id = person_test_progresses.position_id").
		Where("person_test_progresses.status IN ?", []model.ProgressStatus{model.ProgressPending, model.ProgressInProgress}).
		Where("position_evaluation_configs.test_code_expiry_days > 0").
		Scan(&rows).Error
	return rows, err
}

func (r *progressRepository) MarkExpired(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).
		Model(&model.PersonTestProgress{}).
		Where("id IN ? AND status IN ?", ids, []model.ProgressStatus{model.ProgressPending, model.ProgressInProgress}).
		Update("status", model.ProgressExpired)
	return tx.RowsAffected, tx.Error
}
