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

// StudentRepository handles database operations for student accounts
type StudentRepository struct {
	db DB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create persists a new student account and assigns its ID. A duplicate
// email surfaces as apperrors.ErrEmailAlreadyExists via the unique
// constraint, never by an application-level pre-check.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (full_name, email, password_hash, phone, university, major, gpa)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.FullName,
		student.Email,
		student.PasswordHash,
		student.Phone,
		student.University,
		student.Major,
		student.GPA,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, full_name, email, password_hash, phone, university, major, gpa, skills, created_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FullName,
		&student.Email,
		&student.PasswordHash,
		&student.Phone,
		&student.University,
		&student.Major,
		&student.GPA,
		&student.Skills,
		&student.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT id, full_name, email, password_hash, phone, university, major, gpa, skills, created_at
		FROM students
		WHERE email = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&student.ID,
		&student.FullName,
		&student.Email,
		&student.PasswordHash,
		&student.Phone,
		&student.University,
		&student.Major,
		&student.GPA,
		&student.Skills,
		&student.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return &student, nil
}

// ExistsByID checks whether a student account exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates the mutable profile fields of a student
func (r *StudentRepository) UpdateProfile(ctx context.Context, id int64, phone, university, major *string, gpa *float64, skills *string) error {
	query := `
		UPDATE students
		SET phone = $1, university = $2, major = $3, gpa = $4, skills = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query, phone, university, major, gpa, skills, id)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetAll retrieves all student accounts ordered by creation time descending
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, full_name, email, password_hash, phone, university, major, gpa, skills, created_at
		FROM students
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.Email,
			&student.PasswordHash,
			&student.Phone,
			&student.University,
			&student.Major,
			&student.GPA,
			&student.Skills,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the number of student accounts
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
