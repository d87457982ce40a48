package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kauanferreira/salesdesk/internal/app/models/dto"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
	"github.com/kauanferreira/salesdesk/internal/pkg/logger"
)

// HandleAPIError translates an application error into an HTTP status and a
// standard error body. No recovery happens here; the error kind alone decides
// the response.
func HandleAPIError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewStandardError(http.StatusNotFound, "Resource not found", err.Error(), path))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict,
			dto.NewStandardError(http.StatusConflict, "Duplicate entry", err.Error(), path))
	case errors.Is(err, apperrors.ErrIntegrity):
		c.JSON(http.StatusConflict,
			dto.NewStandardError(http.StatusConflict, "Referential integrity violation", err.Error(), path))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest,
			dto.NewStandardError(http.StatusBadRequest, "Invalid request", err.Error(), path))
	case errors.Is(err, apperrors.ErrConnection):
		logger.Error().Err(err).Str("path", path).Msg("Database connection failure")
		c.JSON(http.StatusInternalServerError,
			dto.NewStandardError(http.StatusInternalServerError, "Database connection error", err.Error(), path))
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error().Err(err).Str("path", path).Msg("Database failure")
		c.JSON(http.StatusInternalServerError,
			dto.NewStandardError(http.StatusInternalServerError, "Database error", err.Error(), path))
	default:
		logger.Error().Err(err).Str("path", path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError,
			dto.NewStandardError(http.StatusInternalServerError, "Internal server error", err.Error(), path))
	}
}

// BadRequest writes a 400 response with a standard error body, for request
// parsing failures that never reach the service layer.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest,
		dto.NewStandardError(http.StatusBadRequest, "Invalid request", message, c.Request.URL.Path))
}
