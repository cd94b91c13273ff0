package dto

import (
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
)

// SubmitApplicationRequest represents a job application request. Job title
// and company are denormalized display copies supplied by the client.
type SubmitApplicationRequest struct {
	JobID       int64   `json:"job_id" binding:"required,min=1"`
	StudentID   int64   `json:"student_id" binding:"required,min=1"`
	JobTitle    *string `json:"job_title"`
	Company     *string `json:"company"`
	CoverLetter *string `json:"cover_letter"`
}

// ApplicationsResponse is the envelope for application listings
type ApplicationsResponse struct {
	Success      bool                  `json:"success"`
	Applications []*models.Application `json:"applications"`
}

// SubmitApplicationResponse is the envelope for application submission
type SubmitApplicationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}
