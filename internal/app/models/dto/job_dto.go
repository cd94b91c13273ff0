package dto

import (
	"strings"
	"time"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
)

// CreateJobRequest represents a job posting request. Skills arrive as a
// list and are comma-joined for storage.
type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Type        *string  `json:"type"`
	Location    *string  `json:"location"`
	Salary      *string  `json:"salary"`
	Hours       *string  `json:"hours"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	EmployerID  *int64   `json:"employer_id"`
}

// JobItem is the API projection of a job posting
type JobItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Type        *string   `json:"type"`
	Location    *string   `json:"location"`
	Salary      *string   `json:"salary"`
	Hours       *string   `json:"hours"`
	Description *string   `json:"description"`
	Skills      []string  `json:"skills"`
	Posted      string    `json:"posted"`
	EmployerID  *int64    `json:"employer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobsResponse is the envelope for job listings
type JobsResponse struct {
	Success bool      `json:"success"`
	Jobs    []JobItem `json:"jobs"`
}

// JobResponse is the envelope for a single job
type JobResponse struct {
	Success bool    `json:"success"`
	Job     JobItem `json:"job"`
}

// CreateJobResponse is the envelope for job creation
type CreateJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   int64  `json:"job_id"`
}

// NewJobItem converts a job model to its API projection, splitting the
// comma-joined skills column.
func NewJobItem(job *models.Job) JobItem {
	return JobItem{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Type:        job.JobType,
		Location:    job.Location,
		Salary:      job.Salary,
		Hours:       job.Hours,
		Description: job.Description,
		Skills:      SplitSkills(job.RequiredSkills),
		Posted:      job.Posted,
		EmployerID:  job.EmployerID,
		CreatedAt:   job.CreatedAt,
	}
}

// NewJobItems converts a slice of job models
func NewJobItems(jobs []*models.Job) []JobItem {
	items := make([]JobItem, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, NewJobItem(job))
	}
	return items
}

// SplitSkills splits a comma-joined skills column into a list. An empty or
// null column yields an empty list, never null.
func SplitSkills(skills *string) []string {
	if skills == nil || strings.TrimSpace(*skills) == "" {
		return []string{}
	}

	parts := strings.Split(*skills, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// JoinSkills joins a skills list for storage
func JoinSkills(skills []string) string {
	trimmed := make([]string, 0, len(skills))
	for _, skill := range skills {
		if s := strings.TrimSpace(skill); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	return strings.Join(trimmed, ",")
}
