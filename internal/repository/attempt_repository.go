package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	FindByID(ctx context.Context, id uint) (*model.TestAttempt, error)
	FindByIDWithProgress(ctx context.Context, id uint) (*model.TestAttempt, error)
	// AbandonOpenByProgress closes any open attempt on the given
	// progress rows. Used when assignments expire.
	AbandonOpenByProgress(ctx context.Context, progressIDs []uint) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) FindByID(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDWithProgress(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).Preload("Progress").Preload("Progress.Test").First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) AbandonOpenByProgress(ctx context.Context, progressIDs []uint) (int64, error) {
	if len(progressIDs) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).
		Model(&model.TestAttempt{}).
		Where("progress_id IN ? AND status = ?", progressIDs, model.AttemptInProgress).
		Update("status", model.AttemptAbandoned)
	return tx.RowsAffected, tx.Error
}
