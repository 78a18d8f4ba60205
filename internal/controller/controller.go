package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/service"
)

// WriteError maps engine errors onto HTTP statuses. Lifecycle
// rejections get 409 so clients can tell them from bad input.
func WriteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPositionNotFound),
		errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrProgressNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrLinkNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAttemptLimitExceeded),
		errors.Is(err, service.ErrAlreadyInProgress),
		errors.Is(err, service.ErrAttemptAlreadyExpired),
		errors.Is(err, service.ErrAttemptNotOpen):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidConfig):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal error", Details: []string{err.Error()}})
	}
}

// ParseIDParam reads a uint path parameter, writing a 400 on failure.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}
