package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pukkaew/LearnHub-sub000/internal/controller"
	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/service"
	"github.com/rs/zerolog/log"
)

// AdminAssignmentController covers seeding, assignment management and
// the maintenance operations around the engine.
type AdminAssignmentController struct {
	adminService    service.AdminAssignmentService
	progressService service.ProgressService
}

func NewAdminAssignmentController(
	adminService service.AdminAssignmentService,
	progressService service.ProgressService,
) *AdminAssignmentController {
	return &AdminAssignmentController{
		adminService:    adminService,
		progressService: progressService,
	}
}

// CreatePosition godoc
// @Summary (Admin) Register a position
// @Tags Admin
// @Accept json
// @Produce json
// @Param position body dto.CreatePositionRequest true "Position"
// @Success 201 {object} model.Position
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/positions [post]
func (c *AdminAssignmentController) CreatePosition(ctx *gin.Context) {
	var req dto.CreatePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	position, err := c.adminService.CreatePosition(ctx.Request.Context(), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, position)
}

// CreatePerson godoc
// @Summary (Admin) Register a person
// @Tags Admin
// @Accept json
// @Produce json
// @Param person body dto.CreatePersonRequest true "Person"
// @Success 201 {object} model.Person
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/persons [post]
func (c *AdminAssignmentController) CreatePerson(ctx *gin.Context) {
	var req dto.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	person, err := c.adminService.CreatePerson(ctx.Request.Context(), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, person)
}

// CreateTest godoc
// @Summary (Admin) Register a test
// @Description Minimal authoring surface: only the fields resolution needs. Question content lives elsewhere.
// @Tags Admin
// @Accept json
// @Produce json
// @Param test body dto.CreateTestRequest true "Test"
// @Success 201 {object} model.Test
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/tests [post]
func (c *AdminAssignmentController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	test, err := c.adminService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// CreateLink godoc
// @Summary (Admin) Link a test to a position
// @Tags Admin
// @Accept json
// @Produce json
// @Param link body dto.CreateLinkRequest true "Link"
// @Success 201 {object} model.PositionTestLink
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/position-test-links [post]
func (c *AdminAssignmentController) CreateLink(ctx *gin.Context) {
	var req dto.CreateLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	link, err := c.adminService.CreateLink(ctx.Request.Context(), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// CreateLegacySet godoc
// @Summary (Admin) Add a legacy test-set row
// @Description Kept for backward compatibility; an active position-test link for the same pair always wins over this.
// @Tags Admin
// @Accept json
// @Produce json
// @Param set body dto.CreateLegacySetRequest true "Legacy set"
// @Success 201 {object} model.LegacyPositionTestSet
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/legacy-test-sets [post]
func (c *AdminAssignmentController) CreateLegacySet(ctx *gin.Context) {
	var req dto.CreateLegacySetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	set, err := c.adminService.CreateLegacySet(ctx.Request.Context(), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, set)
}

// SetLinkActive godoc
// @Summary (Admin) Activate or deactivate a position-test link
// @Description An inactive link drops out of resolution; a legacy row for the same pair takes over if one exists.
// @Tags Admin
// @Accept json
// @Produce json
// @Param link_id path int true "Link ID"
// @Param active body dto.SetActiveRequest true "Target state"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/position-test-links/{link_id}/active [patch]
func (c *AdminAssignmentController) SetLinkActive(ctx *gin.Context) {
	linkID, ok := controller.ParseIDParam(ctx, "link_id")
	if !ok {
		return
	}
	var req dto.SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.adminService.SetLinkActive(ctx.Request.Context(), linkID, *req.IsActive); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetLegacySetActive godoc
// @Summary (Admin) Activate or deactivate a legacy test-set row
// @Tags Admin
// @Accept json
// @Produce json
// @Param set_id path int true "Legacy set ID"
// @Param active body dto.SetActiveRequest true "Target state"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/legacy-test-sets/{set_id}/active [patch]
func (c *AdminAssignmentController) SetLegacySetActive(ctx *gin.Context) {
	setID, ok := controller.ParseIDParam(ctx, "set_id")
	if !ok {
		return
	}
	var req dto.SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.adminService.SetLegacySetActive(ctx.Request.Context(), setID, *req.IsActive); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UpsertEvaluationConfig godoc
// @Summary (Admin) Set a position's evaluation policy
// @Tags Admin
// @Accept json
// @Produce json
// @Param position_id path int true "Position ID"
// @Param config body dto.UpsertEvaluationConfigRequest true "Policy"
// @Success 200 {object} model.PositionEvaluationConfig
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Criteria parameter missing"
// @Router /admin/positions/{position_id}/evaluation-config [put]
func (c *AdminAssignmentController) UpsertEvaluationConfig(ctx *gin.Context) {
	positionID, ok := controller.ParseIDParam(ctx, "position_id")
	if !ok {
		return
	}
	var req dto.UpsertEvaluationConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	cfg, err := c.adminService.UpsertEvaluationConfig(ctx.Request.Context(), positionID, req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cfg)
}

// EnsureAssigned godoc
// @Summary (Admin) Assign a position's required tests to a person
// @Description Idempotent: creates missing progress rows, never duplicates or removes existing ones.
// @Tags Admin
// @Accept json
// @Produce json
// @Param assignment body dto.EnsureAssignedRequest true "Person and position"
// @Success 200 {array} dto.ProgressDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/assignments/ensure [post]
func (c *AdminAssignmentController) EnsureAssigned(ctx *gin.Context) {
	var req dto.EnsureAssignedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	rows, err := c.progressService.EnsureAssigned(ctx.Request.Context(), req.PersonID, req.PositionID)
	if err != nil {
		log.Warn().Err(err).Uint("personID", req.PersonID).Uint("positionID", req.PositionID).Msg("EnsureAssigned: failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// ResetProgress godoc
// @Summary (Admin) Wipe a person's progress for a position
// @Description Deletes progress rows and their attempts so EnsureAssigned can rebuild the assignment. The only way out of expired.
// @Tags Admin
// @Accept json
// @Produce json
// @Param reset body dto.ResetProgressRequest true "Person and position"
// @Success 200 {object} dto.ResetProgressResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/assignments/reset [post]
func (c *AdminAssignmentController) ResetProgress(ctx *gin.Context) {
	var req dto.ResetProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	deleted, err := c.progressService.ResetProgress(ctx.Request.Context(), req.PersonID, req.PositionID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResetProgressResponse{Deleted: deleted})
}

// ExpireStale godoc
// @Summary (Admin) Expire overdue assignments
// @Description Manual trigger for the periodic expiry sweep.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.ExpireStaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/maintenance/expire-stale [post]
func (c *AdminAssignmentController) ExpireStale(ctx *gin.Context) {
	expired, err := c.progressService.ExpireStale(ctx.Request.Context(), time.Now())
	if err != nil {
		log.Error().Err(err).Msg("ExpireStale: sweep failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExpireStaleResponse{Expired: expired})
}
