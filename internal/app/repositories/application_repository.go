package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create persists a new application. The (job_id, student_id) pair is
// protected by a unique constraint, so a repeat submission surfaces as
// apperrors.ErrDuplicateApplication even under concurrent requests.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (job_id, student_id, job_title, company, cover_letter, applied_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		application.JobID,
		application.StudentID,
		application.JobTitle,
		application.Company,
		application.CoverLetter,
		application.AppliedDate,
		application.Status,
	).Scan(&application.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_job_id_student_id_key") {
			return apperrors.ErrDuplicateApplication
		}
		// The job is checked upstream, so a broken reference means the student.
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetAll retrieves all applications, most recent first
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	query := `
		SELECT id, job_id, student_id, job_title, company, cover_letter, applied_date, status
		FROM applications
		ORDER BY applied_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// GetByStudentID retrieves all applications submitted by a student, most recent first
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `
		SELECT id, job_id, student_id, job_title, company, cover_letter, applied_date, status
		FROM applications
		WHERE student_id = $1
		ORDER BY applied_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student applications: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

func scanApplications(rows pgx.Rows) ([]*models.Application, error) {
	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		if err := rows.Scan(
			&application.ID,
			&application.JobID,
			&application.StudentID,
			&application.JobTitle,
			&application.Company,
			&application.CoverLetter,
			&application.AppliedDate,
			&application.Status,
		); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// Count returns the number of applications
func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of applications per status
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting applications by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
