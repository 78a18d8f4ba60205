package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluationConfigRepository interface {
	Upsert(ctx context.Context, cfg *model.PositionEvaluationConfig) error
	FindByPosition(ctx context.Context, positionID uint) (*model.PositionEvaluationConfig, error)
}

type evaluationConfigRepository struct {
	db *gorm.DB
}

func NewEvaluationConfigRepository(db *gorm.DB) EvaluationConfigRepository {
	return &evaluationConfigRepository{db: db}
}

// Upsert keeps the one-config-per-position invariant: a second write
// for the same position replaces the stored policy.
func (r *evaluationConfigRepository) Upsert(ctx context.Context, cfg *model.PositionEvaluationConfig) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "position_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"passing_criteria",
			"min_average_score",
			"min_tests_to_pass",
			"allow_partial_completion",
			"max_attempts_per_test",
			"test_code_expiry_days",
			"updated_at",
		}),
	}).Create(cfg).Error
}

func (r *evaluationConfigRepository) FindByPosition(ctx context.Context, positionID uint) (*model.PositionEvaluationConfig, error) {
	var cfg model.PositionEvaluationConfig
	err := r.db.WithContext(ctx).Where("position_id = ?", positionID).First(&cfg).Error
	return &cfg, err
}
