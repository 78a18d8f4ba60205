package dto

// CreatePositionRequest is for admin to register a position.
type CreatePositionRequest struct {
	Title       string `json:"title" binding:"required"`
	Department  string `json:"department"`
	Description string `json:"description"`
}

type CreatePersonRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// CreateTestRequest covers the minimal authoring surface the engine
// needs seeded; full question authoring lives elsewhere.
type CreateTestRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Type         string  `json:"type" binding:"required,oneof=application aptitude personality pre_employment"`
	Status       string  `json:"status" binding:"omitempty,oneof=draft published archived"`
	IsGlobal     bool    `json:"is_global"`
	PassingScore float64 `json:"passing_score" binding:"omitempty,min=0,max=100"`
}

type CreateLinkRequest struct {
	PositionID           uint     `json:"position_id" binding:"required"`
	TestID               uint     `json:"test_id" binding:"required"`
	OrderInSet           int      `json:"order_in_set" binding:"min=0"`
	IsRequired           *bool    `json:"is_required"`
	WeightPercent        *float64 `json:"weight_percent" binding:"omitempty,gt=0,max=100"`
	PassingScoreOverride *float64 `json:"passing_score_override" binding:"omitempty,min=0,max=100"`
	IsActive             *bool    `json:"is_active"`
}

type CreateLegacySetRequest struct {
	PositionID           uint     `json:"position_id" binding:"required"`
	TestID               uint     `json:"test_id" binding:"required"`
	OrderInSet           int      `json:"order_in_set" binding:"min=0"`
	IsRequired           *bool    `json:"is_required"`
	WeightPercent        *float64 `json:"weight_percent" binding:"omitempty,gt=0,max=100"`
	PassingScoreOverride *float64 `json:"passing_score_override" binding:"omitempty,min=0,max=100"`
	Category             string   `json:"category"`
	IsActive             *bool    `json:"is_active"`
}

// SetActiveRequest toggles an assignment link or legacy set in or out
// of resolution without deleting it.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UpsertEvaluationConfigRequest struct {
	PassingCriteria        string   `json:"passing_criteria" binding:"required,oneof=all_pass average min_tests"`
	MinAverageScore        *float64 `json:"min_average_score" binding:"omitempty,min=0,max=100"`
	MinTestsToPass         *int     `json:"min_tests_to_pass" binding:"omitempty,min=1"`
	AllowPartialCompletion bool     `json:"allow_partial_completion"`
	MaxAttemptsPerTest     int      `json:"max_attempts_per_test" binding:"min=0"`
	TestCodeExpiryDays     int      `json:"test_code_expiry_days" binding:"min=0"`
}

// EnsureAssignedRequest links a person to a position's testing
// requirement, creating missing progress rows.
type EnsureAssignedRequest struct {
	PersonID   uint `json:"person_id" binding:"required"`
	PositionID uint `json:"position_id" binding:"required"`
}

// ResetProgressRequest wipes a person's progress for a position so the
// assignment can be rebuilt. This is the only way out of expired.
type ResetProgressRequest struct {
	PersonID   uint `json:"person_id" binding:"required"`
	PositionID uint `json:"position_id" binding:"required"`
}

// CompleteAttemptRequest reports the outcome computed by the external
// test-taking flow.
type CompleteAttemptRequest struct {
	Score      float64                `json:"score" binding:"min=0"`
	Percentage float64                `json:"percentage" binding:"min=0,max=100"`
	Meta       map[string]interface{} `json:"meta"`
}
