package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

// psql is the shared statement builder configured for PostgreSQL placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const referenceColumns = "id, student_id, referee_name, referee_email, referee_phone, relationship, company, position, status, access_token, token_expiry, request_date, response_date, reference_text, rating"

// ReferenceRepository handles database operations for reference requests
type ReferenceRepository struct {
	db DB
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db DB) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
	}
}

// Create persists a new reference request and assigns its ID
func (r *ReferenceRepository) Create(ctx context.Context, ref *models.ReferenceRequest) error {
	query, args, err := psql.
		Insert("student_references").
		Columns("student_id", "referee_name", "referee_email", "referee_phone",
			"relationship", "company", "position", "status",
			"access_token", "token_expiry", "request_date").
		Values(ref.StudentID, ref.RefereeName, ref.RefereeEmail, ref.RefereePhone,
			ref.Relationship, ref.Company, ref.Position, ref.Status,
			ref.AccessToken, ref.TokenExpiry, ref.RequestDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building reference insert: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&ref.ID); err != nil {
		return fmt.Errorf("error creating reference request: %w", err)
	}

	return nil
}

// GetByID retrieves a reference request by ID
func (r *ReferenceRepository) GetByID(ctx context.Context, id int64) (*models.ReferenceRequest, error) {
	query, args, err := psql.
		Select(referenceColumns).
		From("student_references").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building reference query: %w", err)
	}

	ref, err := r.scanOne(ctx, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("error retrieving reference request: %w", err)
	}

	return ref, nil
}

// GetByToken retrieves a reference request by its access token
func (r *ReferenceRepository) GetByToken(ctx context.Context, token string) (*models.ReferenceRequest, error) {
	query, args, err := psql.
		Select(referenceColumns).
		From("student_references").
		Where(sq.Eq{"access_token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building reference token query: %w", err)
	}

	ref, err := r.scanOne(ctx, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving reference request by token: %w", err)
	}

	return ref, nil
}

// GetByStudentID retrieves all reference requests of a student, most recent first
func (r *ReferenceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.ReferenceRequest, error) {
	query, args, err := psql.
		Select(referenceColumns).
		From("student_references").
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("request_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building reference list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reference requests: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// GetAll retrieves all reference requests, most recent first
func (r *ReferenceRepository) GetAll(ctx context.Context) ([]*models.ReferenceRequest, error) {
	query, args, err := psql.
		Select(referenceColumns).
		From("student_references").
		OrderBy("request_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building reference list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reference requests: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// CompleteIfPending records a referee response on a pending request. The
// status guard lives in the WHERE clause so that two concurrent responses
// cannot both succeed. Returns apperrors.ErrInvalidTransition when the
// request exists but is no longer pending.
func (r *ReferenceRepository) CompleteIfPending(ctx context.Context, id int64, referenceText string, rating int, respondedAt time.Time) error {
	query, args, err := psql.
		Update("student_references").
		Set("status", models.ReferenceStatusCompleted).
		Set("reference_text", referenceText).
		Set("rating", rating).
		Set("response_date", respondedAt).
		Where(sq.Eq{"id": id, "status": models.ReferenceStatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building reference completion: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error completing reference request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, id)
	}

	return nil
}

// DeclineIfPending marks a pending request as declined, with the same
// status guard as CompleteIfPending.
func (r *ReferenceRepository) DeclineIfPending(ctx context.Context, id int64, respondedAt time.Time) error {
	query, args, err := psql.
		Update("student_references").
		Set("status", models.ReferenceStatusDeclined).
		Set("response_date", respondedAt).
		Where(sq.Eq{"id": id, "status": models.ReferenceStatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building reference decline: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error declining reference request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, id)
	}

	return nil
}

// transitionFailure distinguishes "no such request" from "already resolved"
// after a guarded update matched zero rows.
func (r *ReferenceRepository) transitionFailure(ctx context.Context, id int64) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student_references WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking reference existence: %w", err)
	}
	if !exists {
		return apperrors.ErrReferenceNotFound
	}
	return apperrors.ErrInvalidTransition
}

// GetStats aggregates reference request counts and the average rating of
// completed references for a student.
func (r *ReferenceRepository) GetStats(ctx context.Context, studentID int64) (*models.ReferenceStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COALESCE(AVG(rating) FILTER (WHERE status = $2), 0)
		FROM student_references
		WHERE student_id = $1
	`

	var stats models.ReferenceStats
	err := r.db.QueryRow(ctx, query, studentID,
		models.ReferenceStatusCompleted, models.ReferenceStatusPending).Scan(
		&stats.Total,
		&stats.Completed,
		&stats.Pending,
		&stats.AvgRating,
	)
	if err != nil {
		return nil, fmt.Errorf("error aggregating reference stats: %w", err)
	}

	return &stats, nil
}

// Count returns the number of reference requests
func (r *ReferenceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_references`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting reference requests: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of reference requests per status
func (r *ReferenceRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM student_references GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting reference requests by status: %w", err)
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

// AvgRating returns the average rating across all completed references
func (r *ReferenceRepository) AvgRating(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM student_references WHERE status = $1`,
		models.ReferenceStatusCompleted).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("error averaging reference ratings: %w", err)
	}
	return avg, nil
}

func (r *ReferenceRepository) scanOne(ctx context.Context, query string, args []interface{}) (*models.ReferenceRequest, error) {
	var ref models.ReferenceRequest
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&ref.ID,
		&ref.StudentID,
		&ref.RefereeName,
		&ref.RefereeEmail,
		&ref.RefereePhone,
		&ref.Relationship,
		&ref.Company,
		&ref.Position,
		&ref.Status,
		&ref.AccessToken,
		&ref.TokenExpiry,
		&ref.RequestDate,
		&ref.ResponseDate,
		&ref.ReferenceText,
		&ref.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func scanReferences(rows pgx.Rows) ([]*models.ReferenceRequest, error) {
	var refs []*models.ReferenceRequest
	for rows.Next() {
		var ref models.ReferenceRequest
		if err := rows.Scan(
			&ref.ID,
			&ref.StudentID,
			&ref.RefereeName,
			&ref.RefereeEmail,
			&ref.RefereePhone,
			&ref.Relationship,
			&ref.Company,
			&ref.Position,
			&ref.Status,
			&ref.AccessToken,
			&ref.TokenExpiry,
			&ref.RequestDate,
			&ref.ResponseDate,
			&ref.ReferenceText,
			&ref.Rating,
		); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}
