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

// EmployerRepository handles database operations for employer accounts
type EmployerRepository struct {
	db DB
}

// NewEmployerRepository creates a new EmployerRepository
func NewEmployerRepository(db DB) *EmployerRepository {
	return &EmployerRepository{
		db: db,
	}
}

// Create persists a new employer account and assigns its ID
func (r *EmployerRepository) Create(ctx context.Context, employer *models.Employer) error {
	query := `
		INSERT INTO employers (company_name, contact_person, email, password_hash, phone, industry, company_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		employer.CompanyName,
		employer.ContactPerson,
		employer.Email,
		employer.PasswordHash,
		employer.Phone,
		employer.Industry,
		employer.CompanySize,
	).Scan(&employer.ID, &employer.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating employer: %w", err)
	}

	return nil
}

// GetByID retrieves an employer by ID
func (r *EmployerRepository) GetByID(ctx context.Context, id int64) (*models.Employer, error) {
	query := `
		SELECT id, company_name, contact_person, email, password_hash, phone, industry, company_size, created_at
		FROM employers
		WHERE id = $1
	`

	var employer models.Employer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&employer.ID,
		&employer.CompanyName,
		&employer.ContactPerson,
		&employer.Email,
		&employer.PasswordHash,
		&employer.Phone,
		&employer.Industry,
		&employer.CompanySize,
		&employer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, fmt.Errorf("error retrieving employer: %w", err)
	}

	return &employer, nil
}

// GetByEmail retrieves an employer by email
func (r *EmployerRepository) GetByEmail(ctx context.Context, email string) (*models.Employer, error) {
	query := `
		SELECT id, company_name, contact_person, email, password_hash, phone, industry, company_size, created_at
		FROM employers
		WHERE email = $1
	`

	var employer models.Employer
	err := r.db.QueryRow(ctx, query, email).Scan(
		&employer.ID,
		&employer.CompanyName,
		&employer.ContactPerson,
		&employer.Email,
		&employer.PasswordHash,
		&employer.Phone,
		&employer.Industry,
		&employer.CompanySize,
		&employer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, fmt.Errorf("error retrieving employer by email: %w", err)
	}

	return &employer, nil
}

// ExistsByID checks whether an employer account exists
func (r *EmployerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking employer existence: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all employer accounts ordered by creation time descending
func (r *EmployerRepository) GetAll(ctx context.Context) ([]*models.Employer, error) {
	query := `
		SELECT id, company_name, contact_person, email, password_hash, phone, industry, company_size, created_at
		FROM employers
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing employers: %w", err)
	}
	defer rows.Close()

	var employers []*models.Employer
	for rows.Next() {
		var employer models.Employer
		if err := rows.Scan(
			&employer.ID,
			&employer.CompanyName,
			&employer.ContactPerson,
			&employer.Email,
			&employer.PasswordHash,
			&employer.Phone,
			&employer.Industry,
			&employer.CompanySize,
			&employer.CreatedAt,
		); err != nil {
			return nil, err
		}
		employers = append(employers, &employer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employers, nil
}

// Count returns the number of employer accounts
func (r *EmployerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting employers: %w", err)
	}
	return count, nil
}
