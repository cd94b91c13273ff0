package dto

import (
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
)

// RequestReferenceRequest represents a student's ask for a reference
type RequestReferenceRequest struct {
	StudentID    int64   `json:"student_id" binding:"required,min=1"`
	RefereeName  string  `json:"referee_name" binding:"required"`
	RefereeEmail string  `json:"referee_email" binding:"required,email"`
	RefereePhone *string `json:"referee_phone"`
	Relationship *string `json:"relationship"`
	Company      *string `json:"company"`
	Position     *string `json:"position"`
}

// SubmitReferenceResponseRequest represents a referee's response
type SubmitReferenceResponseRequest struct {
	ReferenceText string `json:"reference_text" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
}

// ReferencesResponse is the envelope for reference listings
type ReferencesResponse struct {
	Success    bool                       `json:"success"`
	References []*models.ReferenceRequest `json:"references"`
}

// ReferenceResponse is the envelope for a single reference request
type ReferenceResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message,omitempty"`
	Reference *models.ReferenceRequest `json:"reference"`
}

// RequestReferenceResponse is the envelope for reference creation. The
// token is returned once so the caller can deliver the referee link; it is
// never included in listings.
type RequestReferenceResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReferenceID int64  `json:"reference_id"`
	Token       string `json:"token"`
}

// ReferenceStatsResponse is the envelope for per-student statistics
type ReferenceStatsResponse struct {
	Success bool                  `json:"success"`
	Stats   models.ReferenceStats `json:"stats"`
}
