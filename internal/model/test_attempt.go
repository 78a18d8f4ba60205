package model

import (
	"time"

	"gorm.io/datatypes"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in-progress"
	AttemptCompleted  AttemptStatus = "completed"
	AttemptAbandoned  AttemptStatus = "abandoned"
)

// TestAttempt is one sitting of a test, owned by exactly one
// PersonTestProgress row. The partial unique index keeps at most one
// open attempt per progress row; the insert itself is the exclusivity
// check.
type TestAttempt struct {
	ID         uint               `gorm:"primarykey" json:"id"`
	ProgressID uint               `json:"progress_id" gorm:"not null;index;index:idx_one_open_attempt,unique,where:status = 'in-progress'"`
	Progress   PersonTestProgress `json:"-" gorm:"foreignKey:ProgressID"`
	Status     AttemptStatus      `json:"status" gorm:"not null;default:'in-progress'"`
	Score      *float64           `json:"score,omitempty"`
	Percentage *float64           `json:"percentage,omitempty"`
	// Meta carries whatever the test-taking flow reports alongside the
	// outcome (answer summary, client info).
	Meta        datatypes.JSONMap `json:"meta,omitempty"`
	StartedAt   time.Time         `json:"started_at" gorm:"not null"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
