package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeDuplicateIdentity  ErrorCode = "AUTH_002"

	// Token errors
	ErrorCodeTokenNotFound ErrorCode = "TOKEN_001"
	ErrorCodeTokenExpired  ErrorCode = "TOKEN_002"

	// Resource errors
	ErrorCodeResourceNotFound     ErrorCode = "RES_001"
	ErrorCodeDuplicateApplication ErrorCode = "RES_002"

	// Reference lifecycle errors
	ErrorCodeInvalidTransition ErrorCode = "REF_001"
	ErrorCodeInvalidRating     ErrorCode = "REF_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorResponse represents the standard failure envelope. The message is
// always safe for clients; internal detail stays in the server log.
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Message string    `json:"message" example:"Invalid credentials"`
	Code    ErrorCode `json:"code,omitempty" example:"AUTH_001"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
}

// HandleValidationError converts binding/validation failures into a client
// facing error response with per-field messages.
func HandleValidationError(err error) *ErrorResponse {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, formatFieldError(fieldErr))
		}
		return NewErrorResponse(ErrorCodeValidationFailed, strings.Join(messages, "; "))
	}
	return NewErrorResponse(ErrorCodeValidationFailed, "Invalid request format")
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
