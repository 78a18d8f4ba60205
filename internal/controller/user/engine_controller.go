package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pukkaew/LearnHub-sub000/internal/controller"
	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/service"
	"github.com/rs/zerolog/log"
)

// EngineController exposes the read and attempt operations of the
// assignment engine to the test-taking flow and dashboards.
type EngineController struct {
	resolver   service.ResolverService
	progress   service.ProgressService
	evaluation service.EvaluationService
}

func NewEngineController(
	resolver service.ResolverService,
	progress service.ProgressService,
	evaluation service.EvaluationService,
) *EngineController {
	return &EngineController{
		resolver:   resolver,
		progress:   progress,
		evaluation: evaluation,
	}
}

// GetRequiredTests godoc
// @Summary List the tests a position requires
// @Description Returns the deduplicated, ordered required-test list merged from global tests, position links and legacy sets.
// @Tags Engine
// @Produce json
// @Param position_id path int true "Position ID"
// @Success 200 {array} dto.ResolvedTestDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /positions/{position_id}/required-tests [get]
func (c *EngineController) GetRequiredTests(ctx *gin.Context) {
	positionID, ok := controller.ParseIDParam(ctx, "position_id")
	if !ok {
		return
	}
	resolved, err := c.resolver.ResolveRequiredTests(ctx.Request.Context(), positionID)
	if err != nil {
		log.Warn().Err(err).Uint("positionID", positionID).Msg("GetRequiredTests: resolution failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resolved)
}

// GetProgress godoc
// @Summary Per-test progress for a person on a position
// @Tags Engine
// @Produce json
// @Param person_id path int true "Person ID"
// @Param position_id path int true "Position ID"
// @Success 200 {array} dto.ProgressDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /persons/{person_id}/positions/{position_id}/progress [get]
func (c *EngineController) GetProgress(ctx *gin.Context) {
	personID, ok := controller.ParseIDParam(ctx, "person_id")
	if !ok {
		return
	}
	positionID, ok := controller.ParseIDParam(ctx, "position_id")
	if !ok {
		return
	}
	rows, err := c.progress.GetProgress(ctx.Request.Context(), personID, positionID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetEvaluation godoc
// @Summary Overall pass/fail verdict for a person on a position
// @Description Aggregates per-test outcomes under the position's passing criteria. "incomplete" means no verdict yet, not a failure.
// @Tags Engine
// @Produce json
// @Param person_id path int true "Person ID"
// @Param position_id path int true "Position ID"
// @Success 200 {object} dto.EvaluationResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Stored config is invalid"
// @Router /persons/{person_id}/positions/{position_id}/evaluation [get]
func (c *EngineController) GetEvaluation(ctx *gin.Context) {
	personID, ok := controller.ParseIDParam(ctx, "person_id")
	if !ok {
		return
	}
	positionID, ok := controller.ParseIDParam(ctx, "position_id")
	if !ok {
		return
	}
	result, err := c.evaluation.EvaluateOverall(ctx.Request.Context(), personID, positionID)
	if err != nil {
		log.Warn().Err(err).Uint("personID", personID).Uint("positionID", positionID).Msg("GetEvaluation: evaluation failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// StartAttempt godoc
// @Summary Open a test attempt
// @Description At most one open attempt per (person, test); attempt limits and expiry are enforced here.
// @Tags Engine
// @Produce json
// @Param person_id path int true "Person ID"
// @Param test_id path int true "Test ID"
// @Success 201 {object} dto.AttemptDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already in progress, limit exceeded, or expired"
// @Router /persons/{person_id}/tests/{test_id}/attempts [post]
func (c *EngineController) StartAttempt(ctx *gin.Context) {
	personID, ok := controller.ParseIDParam(ctx, "person_id")
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	attempt, err := c.progress.StartAttempt(ctx.Request.Context(), personID, testID)
	if err != nil {
		log.Warn().Err(err).Uint("personID", personID).Uint("testID", testID).Msg("StartAttempt: rejected")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// GetAttempt godoc
// @Summary Fetch one attempt
// @Tags Engine
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id} [get]
func (c *EngineController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	attempt, err := c.progress.GetAttempt(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// CompleteAttempt godoc
// @Summary Report an attempt's outcome
// @Description Called by the test-taking flow after scoring. Writes the outcome onto the progress record unless it expired.
// @Tags Engine
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param outcome body dto.CompleteAttemptRequest true "Score and percentage"
// @Success 200 {object} dto.ProgressDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Attempt not open or assignment expired"
// @Router /attempts/{attempt_id}/complete [post]
func (c *EngineController) CompleteAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.CompleteAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	progress, err := c.progress.CompleteAttempt(ctx.Request.Context(), attemptID, req)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("CompleteAttempt: rejected")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
