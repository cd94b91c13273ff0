package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Unknown errors
// are logged with their detail and answered with a generic 500 body.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeDuplicateIdentity, "Email already registered"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeDuplicateApplication, "Application already submitted for this job"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusGone,
			dto.NewErrorResponse(dto.ErrorCodeTokenExpired, "Access token has expired"))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeTokenNotFound, "Access token not found"))
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeInvalidTransition, "Reference request has already been resolved"))
	case errors.Is(err, apperrors.ErrInvalidRating):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRating, "Rating must be between 1 and 5"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed"))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Student not found"))
	case errors.Is(err, apperrors.ErrEmployerNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Employer not found"))
	case errors.Is(err, apperrors.ErrJobNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Job not found"))
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Application not found"))
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Reference request not found"))
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Notification not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Resource not found"))
	default:
		event := logger.Error().Err(err).Str("path", c.FullPath())
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Details != nil {
			event = event.Fields(customErr.Details)
		}
		event.Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// HandleValidationError answers a request that failed body binding
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
}
