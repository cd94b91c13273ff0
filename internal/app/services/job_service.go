package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
)

// JobStore is the job persistence surface the job service needs
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	GetAll(ctx context.Context) ([]*models.Job, error)
	GetByEmployerID(ctx context.Context, employerID int64) ([]*models.Job, error)
}

// JobService handles job posting operations
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context) ([]*models.Job, error)
	ListJobsByEmployer(ctx context.Context, employerID int64) ([]*models.Job, error)
}

type jobService struct {
	jobs   JobStore
	logger zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobs JobStore, logger zerolog.Logger) JobService {
	return &jobService{
		jobs:   jobs,
		logger: logger,
	}
}

// CreateJob persists a new job posting. Skills arrive as a list and are
// stored comma-joined; the posted label defaults to today's date.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		JobType:     req.Type,
		Location:    req.Location,
		Salary:      req.Salary,
		Hours:       req.Hours,
		Description: req.Description,
		Posted:      time.Now().UTC().Format("2006-01-02"),
		EmployerID:  req.EmployerID,
	}

	if len(req.Skills) > 0 {
		joined := dto.JoinSkills(req.Skills)
		job.RequiredSkills = &joined
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobId", job.ID).Str("title", job.Title).Msg("Job posted")
	return job, nil
}

// GetJob retrieves a single job posting
func (s *jobService) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// ListJobs retrieves all job postings, newest first
func (s *jobService) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return s.jobs.GetAll(ctx)
}

// ListJobsByEmployer retrieves the postings of one employer, newest first
func (s *jobService) ListJobsByEmployer(ctx context.Context, employerID int64) ([]*models.Job, error) {
	return s.jobs.GetByEmployerID(ctx, employerID)
}
