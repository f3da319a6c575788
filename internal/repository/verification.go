package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

type VerificationRepository struct {
	pool    PgxPool
	timeout time.Duration
}

func NewVerificationRepository(pool PgxPool) *VerificationRepository {
	return &VerificationRepository{pool: pool}
}

// WithTimeout bounds every store call so a hung database surfaces as
// a timeout instead of stalling the request.
func (r *VerificationRepository) WithTimeout(timeout time.Duration) *VerificationRepository {
	r.timeout = timeout
	return r
}

func (r *VerificationRepository) Create(ctx context.Context, v *domain.VerificationRecord) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO verifications (id, employee_id, verified, confidence, distance, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		v.ID,
		v.EmployeeID,
		v.Verified,
		v.Confidence,
		v.Distance,
		v.LatencyMs,
	).Scan(&v.CreatedAt)

	if err != nil {
		return storeErr("create verification", err)
	}

	return nil
}
