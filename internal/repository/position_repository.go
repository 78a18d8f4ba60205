package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
)

type PositionRepository interface {
	Create(ctx context.Context, position *model.Position) error
	FindByID(ctx context.Context, id uint) (*model.Position, error)
}

type positionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, position *model.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

func (r *positionRepository) FindByID(ctx context.Context, id uint) (*model.Position, error) {
	var position model.Position
	err := r.db.WithContext(ctx).First(&position, id).Error
	return &position, err
}
