package model

import "time"

type ProgressStatus string

const (
	ProgressPending    ProgressStatus = "pending"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
	ProgressExpired    ProgressStatus = "expired"
)

// PersonTestProgress tracks one assigned test for one person.
// Rows are created by assignment resolution and only removed by an
// administrative reset; a later resolution that no longer includes the
// test leaves the row untouched.
type PersonTestProgress struct {
	ID         uint `gorm:"primarykey" json:"id"`
	PersonID   uint `json:"person_id" gorm:"not null;uniqueIndex:idx_person_test_progress,priority:1"`
	TestID     uint `json:"test_id" gorm:"not null;uniqueIndex:idx_person_test_progress,priority:2"`
	PositionID uint `json:"position_id" gorm:"not null;index"`
	Test       Test `json:"test,omitempty" gorm:"foreignKey:TestID"`
	// Source and SourceSetID record which assignment mechanism produced
	// this row. SourceSetID is nil for global assignments.
	Source      AssignmentSource `json:"source" gorm:"not null"`
	SourceSetID *uint            `json:"source_set_id,omitempty"`
	Status      ProgressStatus   `json:"status" gorm:"not null;default:'pending';index"`
	Score       *float64         `json:"score,omitempty"`
	Percentage  *float64         `json:"percentage,omitempty"`
	Passed      *bool            `json:"passed,omitempty"`
	AssignedAt  time.Time        `json:"assigned_at" gorm:"not null"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
