package models

import "time"

// Job defines the job posting model based on the 'jobs' table.
// Required skills are stored as a comma-joined string and split at the
// API boundary.
type Job struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Title          string    `json:"title" db:"title" example:"Barista (weekends)"`
	Company        string    `json:"company" db:"company"`
	JobType        *string   `json:"type,omitempty" db:"job_type" example:"part-time"`
	Location       *string   `json:"location,omitempty" db:"location"`
	Salary         *string   `json:"salary,omitempty" db:"salary"`
	Hours          *string   `json:"hours,omitempty" db:"hours"`
	Description    *string   `json:"description,omitempty" db:"description"`
	RequiredSkills *string   `json:"-" db:"required_skills"`
	Posted         string    `json:"posted" db:"posted"`
	EmployerID     *int64    `json:"employer_id,omitempty" db:"employer_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
