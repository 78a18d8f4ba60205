package model

import (
	"time"

	"gorm.io/gorm"
)

type Person struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	FullName  string         `json:"full_name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
