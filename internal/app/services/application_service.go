package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
)

// ApplicationStore is the application persistence surface the service needs
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetAll(ctx context.Context) ([]*models.Application, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Application, error)
}

// ApplicationService handles job application operations
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error)
	ListApplications(ctx context.Context, studentID *int64) ([]*models.Application, error)
}

type applicationService struct {
	applications  ApplicationStore
	jobs          JobStore
	notifications NotificationStore
	logger        zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applications ApplicationStore, jobs JobStore, notifications NotificationStore, logger zerolog.Logger) ApplicationService {
	return &applicationService{
		applications:  applications,
		jobs:          jobs,
		notifications: notifications,
		logger:        logger,
	}
}

// SubmitApplication records a student's application for a job. The
// (job, student) pair is unique; a repeat submission surfaces as
// ErrDuplicateApplication from the store. The employer who posted the job
// is notified when one is linked.
func (s *applicationService) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:       req.JobID,
		StudentID:   req.StudentID,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		CoverLetter: req.CoverLetter,
		AppliedDate: time.Now().UTC(),
		Status:      models.ApplicationStatusPending,
	}
	if application.JobTitle == nil {
		application.JobTitle = &job.Title
	}
	if application.Company == nil {
		application.Company = &job.Company
	}

	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	if job.EmployerID != nil {
		notification := &models.Notification{
			RecipientID:      *job.EmployerID,
			RecipientType:    models.RecipientEmployer,
			Message:          fmt.Sprintf("New application received for %s", job.Title),
			NotificationType: "application_received",
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			// Notification failure must not undo an accepted application.
			s.logger.Error().Err(err).Int64("applicationId", application.ID).Msg("Failed to notify employer")
		}
	}

	s.logger.Info().
		Int64("applicationId", application.ID).
		Int64("jobId", req.JobID).
		Int64("studentId", req.StudentID).
		Msg("Application submitted")

	return application, nil
}

// ListApplications retrieves applications, optionally filtered by student
func (s *applicationService) ListApplications(ctx context.Context, studentID *int64) ([]*models.Application, error) {
	if studentID != nil {
		return s.applications.GetByStudentID(ctx, *studentID)
	}
	return s.applications.GetAll(ctx)
}
