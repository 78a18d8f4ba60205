package model

import (
	"time"

	"gorm.io/gorm"
)

type TestStatus string

const (
	TestStatusDraft     TestStatus = "draft"
	TestStatusPublished TestStatus = "published"
	TestStatusArchived  TestStatus = "archived"
)

type TestType string

const (
	TestTypeApplication   TestType = "application"
	TestTypeAptitude      TestType = "aptitude"
	TestTypePersonality   TestType = "personality"
	TestTypePreEmployment TestType = "pre_employment"
)

// AllowedApplicantTypes lists the test types that participate in
// position resolution. Other types (e.g. internal training quizzes)
// never show up in a position's required set.
var AllowedApplicantTypes = []TestType{
	TestTypeApplication,
	TestTypeAptitude,
	TestTypePersonality,
	TestTypePreEmployment,
}

type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Type        TestType       `json:"type" gorm:"not null;index"`
	Status      TestStatus     `json:"status" gorm:"not null;default:'draft';index"`
	IsGlobal    bool           `json:"is_global" gorm:"not null;default:false;index"`
	// PassingScore is the test's own pass threshold in percent.
	// Zero means the engine-wide default applies.
	PassingScore float64        `json:"passing_score"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
