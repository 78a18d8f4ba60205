package dto

import "time"

// ResolvedTestDTO is one entry of a position's required-test list, in
// resolution order.
type ResolvedTestDTO struct {
	TestID               uint     `json:"test_id"`
	Title                string   `json:"title"`
	Type                 string   `json:"type"`
	OrderInSet           int      `json:"order_in_set"`
	IsRequired           bool     `json:"is_required"`
	WeightPercent        float64  `json:"weight_percent"`
	PassingScoreOverride *float64 `json:"passing_score_override,omitempty"`
	Source               string   `json:"source"`
	SourceSetID          *uint    `json:"source_set_id,omitempty"`
}

// ProgressDTO is the per-test lifecycle record for dashboards.
type ProgressDTO struct {
	ID          uint       `json:"id"`
	PersonID    uint       `json:"person_id"`
	TestID      uint       `json:"test_id"`
	TestTitle   string     `json:"test_title,omitempty"`
	PositionID  uint       `json:"position_id"`
	Source      string     `json:"source"`
	SourceSetID *uint      `json:"source_set_id,omitempty"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score,omitempty"`
	Percentage  *float64   `json:"percentage,omitempty"`
	Passed      *bool      `json:"passed,omitempty"`
	AssignedAt  time.Time  `json:"assigned_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AttemptDTO describes one sitting of a test.
type AttemptDTO struct {
	ID          uint       `json:"id"`
	ProgressID  uint       `json:"progress_id"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score,omitempty"`
	Percentage  *float64   `json:"percentage,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Verdict values returned by the evaluator. Incomplete is not a fail:
// it means the testing requirement has not produced a verdict yet.
const (
	VerdictPass       = "pass"
	VerdictFail       = "fail"
	VerdictIncomplete = "incomplete"
)

// TestOutcomeDTO is the per-test detail inside an evaluation result.
type TestOutcomeDTO struct {
	TestID        uint     `json:"test_id"`
	Title         string   `json:"title"`
	IsRequired    bool     `json:"is_required"`
	WeightPercent float64  `json:"weight_percent"`
	Source        string   `json:"source"`
	Status        string   `json:"status"`
	Score         *float64 `json:"score,omitempty"`
	Percentage    *float64 `json:"percentage,omitempty"`
	Passed        *bool    `json:"passed,omitempty"`
}

// EvaluationResultDTO is the overall verdict for (person, position).
type EvaluationResultDTO struct {
	PersonID          uint             `json:"person_id"`
	PositionID        uint             `json:"position_id"`
	Verdict           string           `json:"verdict"`
	PassingCriteria   string           `json:"passing_criteria"`
	RequiredCount     int              `json:"required_count"`
	CompletedCount    int              `json:"completed_count"`
	PassedCount       int              `json:"passed_count"`
	AveragePercentage *float64         `json:"average_percentage,omitempty"`
	Detail            []TestOutcomeDTO `json:"detail"`
}
