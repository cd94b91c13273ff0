package models

import "time"

// Application statuses used for display. The set is open: the column is a
// free-form string defaulting to pending.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusUnderReview = "under review"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusAccepted    = "accepted"
)

// Application defines the job application model based on the 'applications'
// table. JobTitle and Company are denormalized copies kept for display.
type Application struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	JobID       int64     `json:"job_id" db:"job_id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	JobTitle    *string   `json:"job_title,omitempty" db:"job_title"`
	Company     *string   `json:"company,omitempty" db:"company"`
	CoverLetter *string   `json:"cover_letter,omitempty" db:"cover_letter"`
	AppliedDate time.Time `json:"applied_date" db:"applied_date"`
	Status      string    `json:"status" db:"status" example:"pending"`
}
