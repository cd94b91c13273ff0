package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/dberrors"
)

// JobRepository handles database operations for job postings
type JobRepository struct {
	db DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db DB) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// Create persists a new job posting and assigns its ID
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (title, company, job_type, location, salary, hours, description, required_skills, posted, employer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		job.Title,
		job.Company,
		job.JobType,
		job.Location,
		job.Salary,
		job.Hours,
		job.Description,
		job.RequiredSkills,
		job.Posted,
		job.EmployerID,
	).Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEmployerNotFound
		}
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `
		SELECT id, title, company, job_type, location, salary, hours, description, required_skills, posted, employer_id, created_at
		FROM jobs
		WHERE id = $1
	`

	var job models.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.JobType,
		&job.Location,
		&job.Salary,
		&job.Hours,
		&job.Description,
		&job.RequiredSkills,
		&job.Posted,
		&job.EmployerID,
		&job.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return &job, nil
}

// GetAll retrieves all job postings, newest first
func (r *JobRepository) GetAll(ctx context.Context) ([]*models.Job, error) {
	query := `
		SELECT id, title, company, job_type, location, salary, hours, description, required_skills, posted, employer_id, created_at
		FROM jobs
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetByEmployerID retrieves all job postings created by an employer, newest first
func (r *JobRepository) GetByEmployerID(ctx context.Context, employerID int64) ([]*models.Job, error) {
	query := `
		SELECT id, title, company, job_type, location, salary, hours, description, required_skills, posted, employer_id, created_at
		FROM jobs
		WHERE employer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("error listing employer jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]*models.Job, error) {
	var jobs []*models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.JobType,
			&job.Location,
			&job.Salary,
			&job.Hours,
			&job.Description,
			&job.RequiredSkills,
			&job.Posted,
			&job.EmployerID,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// ExistsByID checks whether a job posting exists
func (r *JobRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking job existence: %w", err)
	}
	return exists, nil
}

// Count returns the number of job postings
func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}
