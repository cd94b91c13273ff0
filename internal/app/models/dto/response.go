package dto

// SuccessResponse represents a minimal success envelope for endpoints that
// carry no payload beyond a message.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Operation completed successfully"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
	}
}
