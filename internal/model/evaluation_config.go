package model

import "time"

type PassingCriteria string

const (
	CriteriaAllPass  PassingCriteria = "all_pass"
	CriteriaAverage  PassingCriteria = "average"
	CriteriaMinTests PassingCriteria = "min_tests"
)

// PositionEvaluationConfig holds the per-position verdict policy.
// At most one row exists per position; positions without a row use
// DefaultEvaluationConfig.
type PositionEvaluationConfig struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	PositionID      uint            `json:"position_id" gorm:"not null;uniqueIndex"`
	PassingCriteria PassingCriteria `json:"passing_criteria" gorm:"not null;default:'all_pass'"`
	MinAverageScore *float64        `json:"min_average_score,omitempty"`
	MinTestsToPass  *int            `json:"min_tests_to_pass,omitempty"`
	// AllowPartialCompletion false blocks any verdict while a required
	// test is still incomplete.
	AllowPartialCompletion bool `json:"allow_partial_completion" gorm:"not null;default:false"`
	// MaxAttemptsPerTest zero means unlimited.
	MaxAttemptsPerTest int `json:"max_attempts_per_test" gorm:"not null;default:0"`
	// TestCodeExpiryDays zero means assignments never expire.
	TestCodeExpiryDays int       `json:"test_code_expiry_days" gorm:"not null;default:0"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultEvaluationConfig is the policy applied when a position has no
// stored config: every required test must pass, partial completion
// blocks the verdict, attempts are unlimited and assignments never
// expire.
func DefaultEvaluationConfig(positionID uint) PositionEvaluationConfig {
	return PositionEvaluationConfig{
		PositionID:      positionID,
		PassingCriteria: CriteriaAllPass,
	}
}
