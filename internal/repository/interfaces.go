package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories depend on,
// satisfied by pgxmock in tests.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EmployeeRepositoryInterface defines operations for employee records.
// Records are created by the admin system; this service only reads them
// and stamps verification times.
type EmployeeRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int, error)
	UpdateLastVerified(ctx context.Context, id string, at time.Time) error
}

// EncodingRepositoryInterface defines operations for stored face
// encodings. Create is create-if-absent: a second encoding for the same
// employee fails with ErrAlreadyEnrolled.
type EncodingRepositoryInterface interface {
	Create(ctx context.Context, enc *domain.Encoding) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Encoding, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
	ListAll(ctx context.Context) ([]domain.Encoding, error)
	ListEnrolledIDs(ctx context.Context) (map[string]struct{}, error)
	Count(ctx context.Context) (int, error)
}

// VerificationRepositoryInterface persists verification audit rows.
type VerificationRepositoryInterface interface {
	Create(ctx context.Context, v *domain.VerificationRecord) error
}
