package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecompass/coursecompass/internal/app/models/dto"
	"github.com/coursecompass/coursecompass/internal/pkg/apperrors"
	"github.com/coursecompass/coursecompass/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Validation
// problems name the offending field; store failures stay opaque to clients.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTooManyCompareIDs):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTooManyIDs, err.Error()).WithField(apperrors.FieldOf(err)),
		))
	case errors.Is(err, apperrors.ErrMissingParameter):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMissingParameter, err.Error()).WithField(apperrors.FieldOf(err)),
		))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField(apperrors.FieldOf(err)),
		))
	case errors.Is(err, apperrors.ErrCourseNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		))
	case errors.Is(err, apperrors.ErrStoreFailure):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store failure")
		detail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Internal server error").WithSeverity(dto.ErrorSeverityCritical)
		if gin.Mode() != gin.ReleaseMode {
			detail = detail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
