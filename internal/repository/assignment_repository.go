package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
)

// AssignmentRepository covers both assignment tables: the current
// position↔test links and the legacy per-position test sets.
type AssignmentRepository interface {
	CreateLink(ctx context.Context, link *model.PositionTestLink) error
	FindLinkByID(ctx context.Context, id uint) (*model.PositionTestLink, error)
	SetLinkActive(ctx context.Context, id uint, active bool) error
	ActiveLinksByPosition(ctx context.Context, positionID uint) ([]model.PositionTestLink, error)

	CreateLegacySet(ctx context.Context, set *model.LegacyPositionTestSet) error
	FindLegacySetByID(ctx context.Context, id uint) (*model.LegacyPositionTestSet, error)
	SetLegacySetActive(ctx context.Context, id uint, active bool) error
	ActiveLegacySetsByPosition(ctx context.Context, positionID uint) ([]model.LegacyPositionTestSet, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) CreateLink(ctx context.Context, link *model.PositionTestLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *assignmentRepository) FindLinkByID(ctx context.Context, id uint) (*model.PositionTestLink, error) {
	var link model.PositionTestLink
	err := r.db.WithContext(ctx).First(&link, id).Error
	return &link, err
}

func (r *assignmentRepository) SetLinkActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.PositionTestLink{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// ActiveLinksByPosition returns active links whose test is published and
// of an allowed type. The test is preloaded for resolution.
func (r *assignmentRepository) ActiveLinksByPosition(ctx context.Context, positionID uint) ([]model.PositionTestLink, error) {
	var links []model.PositionTestLink
	err := r.db.WithContext(ctx).
		Joins("JOIN tests ON tests.id = position_test_links.test_id AND tests.deleted_at IS NULL").
		Where("position_test_links.position_id = ? AND position_test_links.is_active = ?", positionID, true).
		Where("tests.status = ? AND tests.type IN ?", model.TestStatusPublished, model.AllowedApplicantTypes).
		Preload("Test").
		Order("position_test_links.order_in_set ASC").
		Find(&links).Error
	return links, err
}

func (r *assignmentRepository) CreateLegacySet(ctx context.Context, set *model.LegacyPositionTestSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *assignmentRepository) FindLegacySetByID(ctx context.Context, id uint) (*model.LegacyPositionTestSet, error) {
	var set model.LegacyPositionTestSet
	err := r.db.WithContext(ctx).First(&set, id).Error
	return &set, err
}

func (r *assignmentRepository) SetLegacySetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.LegacyPositionTestSet{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *assignmentRepository) ActiveLegacySetsByPosition(ctx context.Context, positionID uint) ([]model.LegacyPositionTestSet, error) {
	var sets []model.LegacyPositionTestSet
	err := r.db.WithContext(ctx).
		Joins("JOIN tests ON tests.id = legacy_position_test_sets.test_id AND tests.deleted_at IS NULL").
		Where("legacy_position_test_sets.position_id = ? AND legacy_position_test_sets.is_active = ?", positionID, true).
		Where("tests.status = ? AND tests.type IN ?", model.TestStatusPublished, model.AllowedApplicantTypes).
		Preload("Test").
		Order("legacy_position_test_sets.order_in_set ASC").
		Find(&sets).Error
	return sets, err
}
