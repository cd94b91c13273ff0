package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/helpers"
)

// Admin read surfaces. These stay narrow: the admin views only list and count.
type AdminStudentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int, error)
}

type AdminEmployerStore interface {
	GetAll(ctx context.Context) ([]*models.Employer, error)
	Count(ctx context.Context) (int, error)
}

type AdminJobStore interface {
	Count(ctx context.Context) (int, error)
}

type AdminApplicationStore interface {
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type AdminReferenceStore interface {
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	AvgRating(ctx context.Context) (float64, error)
}

// AdminService provides the administrative views over all entities
type AdminService interface {
	ListAllUsers(ctx context.Context) ([]dto.AdminUser, error)
	GetOverview(ctx context.Context) (*dto.SystemOverview, error)
}

type adminService struct {
	students     AdminStudentStore
	employers    AdminEmployerStore
	jobs         AdminJobStore
	applications AdminApplicationStore
	references   AdminReferenceStore
	logger       zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(students AdminStudentStore, employers AdminEmployerStore, jobs AdminJobStore, applications AdminApplicationStore, references AdminReferenceStore, logger zerolog.Logger) AdminService {
	return &adminService{
		students:     students,
		employers:    employers,
		jobs:         jobs,
		applications: applications,
		references:   references,
		logger:       logger,
	}
}

// ListAllUsers returns every student and employer account as one list,
// each entry carrying a type discriminator.
func (s *adminService) ListAllUsers(ctx context.Context) ([]dto.AdminUser, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	employers, err := s.employers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]dto.AdminUser, 0, len(students)+len(employers))
	for _, student := range students {
		users = append(users, dto.NewAdminStudent(student))
	}
	for _, employer := range employers {
		users = append(users, dto.NewAdminEmployer(employer))
	}

	return users, nil
}

// GetOverview aggregates entity counts, status breakdowns and the average
// reference rating across the whole system.
func (s *adminService) GetOverview(ctx context.Context) (*dto.SystemOverview, error) {
	overview := &dto.SystemOverview{}

	var err error
	if overview.Students, err = s.students.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Employers, err = s.employers.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Jobs, err = s.jobs.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Applications, err = s.applications.Count(ctx); err != nil {
		return nil, err
	}
	if overview.References, err = s.references.Count(ctx); err != nil {
		return nil, err
	}
	applicationCounts, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	overview.ApplicationsByStatus = statusBreakdown(applicationCounts)

	referenceCounts, err := s.references.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	overview.ReferencesByStatus = statusBreakdown(referenceCounts)

	avg, err := s.references.AvgRating(ctx)
	if err != nil {
		return nil, err
	}
	overview.AvgReferenceRating = helpers.Round2(avg)

	return overview, nil
}

// statusBreakdown flattens a status count map into sorted rows so the
// overview payload is stable across requests.
func statusBreakdown(counts map[string]int) []dto.StatusCount {
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	rows := make([]dto.StatusCount, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, dto.StatusCount{Status: status, Count: counts[status]})
	}
	return rows
}
