package repository

import (
	"context"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	FindByID(ctx context.Context, id uint) (*model.Person, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) FindByID(ctx context.Context, id uint) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).First(&person, id).Error
	return &person, err
}
