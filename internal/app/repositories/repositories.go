package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the query surface shared by *pgxpool.Pool and pgx.Tx, so
// repositories can run against the pool or inside a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories aggregates all repository instances for dependency injection
type Repositories struct {
	Students      *StudentRepository
	Employers     *EmployerRepository
	Jobs          *JobRepository
	Applications  *ApplicationRepository
	References    *ReferenceRepository
	Notifications *NotificationRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(db),
		Employers:     NewEmployerRepository(db),
		Jobs:          NewJobRepository(db),
		Applications:  NewApplicationRepository(db),
		References:    NewReferenceRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}
