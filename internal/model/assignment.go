package model

import "time"

// AssignmentSource identifies which mechanism put a test into a
// position's required set.
type AssignmentSource string

const (
	SourceGlobal       AssignmentSource = "global"
	SourcePositionLink AssignmentSource = "position_link"
	SourceLegacy       AssignmentSource = "legacy"
)

// PositionTestLink is the current many-to-many assignment between a
// position and a test. It supersedes LegacyPositionTestSet whenever
// both reference the same (position, test) pair and the link is active.
type PositionTestLink struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	PositionID           uint      `json:"position_id" gorm:"not null;uniqueIndex:idx_position_test_link,priority:1"`
	TestID               uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_position_test_link,priority:2"`
	Test                 Test      `json:"test,omitempty" gorm:"foreignKey:TestID"`
	OrderInSet int `json:"order_in_set" gorm:"not null;default:0"`
	// IsRequired and IsActive carry no column default: false must
	// round-trip on create, and a default tag makes gorm omit the
	// zero value from the insert. The service layer fills omitted
	// request fields instead.
	IsRequired           bool      `json:"is_required" gorm:"not null"`
	WeightPercent        float64   `json:"weight_percent" gorm:"not null;default:100"`
	PassingScoreOverride *float64  `json:"passing_score_override,omitempty"`
	IsActive             bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// LegacyPositionTestSet is the older per-position assignment table,
// kept for rows that were never migrated to PositionTestLink.
type LegacyPositionTestSet struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	PositionID           uint      `json:"position_id" gorm:"not null;uniqueIndex:idx_legacy_position_test,priority:1"`
	TestID               uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_legacy_position_test,priority:2"`
	Test                 Test      `json:"test,omitempty" gorm:"foreignKey:TestID"`
	OrderInSet           int       `json:"order_in_set" gorm:"not null;default:0"`
	IsRequired           bool      `json:"is_required" gorm:"not null"`
	WeightPercent        float64   `json:"weight_percent" gorm:"not null;default:100"`
	PassingScoreOverride *float64  `json:"passing_score_override,omitempty"`
	Category             string    `json:"category,omitempty"`
	IsActive             bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
