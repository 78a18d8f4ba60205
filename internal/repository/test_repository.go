package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindPublishedGlobal(ctx context.Context, types []model.TestType) ([]model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).First(&test, id).Error
	return &test, err
}

// FindPublishedGlobal returns every published global test of an allowed
// type, oldest first so resolution order is stable.
func (r *testRepository) FindPublishedGlobal(ctx context.Context, types []model.TestType) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Where("is_global = ? AND status = ? AND type IN ?", true, model.TestStatusPublished, types).
		Order("created_at ASC").
		Find(&tests).Error
	return tests, err
}
