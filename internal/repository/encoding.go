package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

type EncodingRepository struct {
	pool    PgxPool
	timeout time.Duration
}

func NewEncodingRepository(pool PgxPool) *EncodingRepository {
	return &EncodingRepository{pool: pool}
}

// WithTimeout bounds every store call so a hung database surfaces as
// a timeout instead of stalling the request.
func (r *EncodingRepository) WithTimeout(timeout time.Duration) *EncodingRepository {
	r.timeout = timeout
	return r
}

// Create inserts the encoding for an employee. The unique index on
// employee_id makes this create-if-absent: concurrent enrollments of
// the same employee resolve to exactly one winner.
func (r *EncodingRepository) Create(ctx context.Context, enc *domain.Encoding) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO encodings (id, employee_id, embedding, source_filename, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	if enc.ID == uuid.Nil {
		enc.ID = uuid.New()
	}

	vec := toVector(enc.Vector)

	err := r.pool.QueryRow(ctx, query,
		enc.ID,
		enc.EmployeeID,
		vec,
		enc.SourceFilename,
	).Scan(&enc.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyEnrolled
		}
		return storeErr("create encoding", err)
	}

	return nil
}

func (r *EncodingRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Encoding, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, employee_id, embedding, COALESCE(source_filename, ''), created_at
		FROM encodings
		WHERE employee_id = $1
	`

	var enc domain.Encoding
	var vec pgvector.Vector

	err := r.pool.QueryRow(ctx, query, employeeID).Scan(
		&enc.ID,
		&enc.EmployeeID,
		&vec,
		&enc.SourceFilename,
		&enc.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEncodingNotFound
	}
	if err != nil {
		return nil, storeErr("get encoding", err)
	}

	enc.Vector = fromVector(vec)

	return &enc, nil
}

func (r *EncodingRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		DELETE FROM encodings
		WHERE employee_id = $1
	`

	result, err := r.pool.Exec(ctx, query, employeeID)
	if err != nil {
		return 0, storeErr("delete encoding", err)
	}

	return result.RowsAffected(), nil
}

func (r *EncodingRepository) ListAll(ctx context.Context) ([]domain.Encoding, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, employee_id, embedding, COALESCE(source_filename, ''), created_at
		FROM encodings
		ORDER BY employee_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list encodings", err)
	}
	defer rows.Close()

	var encodings []domain.Encoding
	for rows.Next() {
		var enc domain.Encoding
		var vec pgvector.Vector

		err := rows.Scan(&enc.ID, &enc.EmployeeID, &vec, &enc.SourceFilename, &enc.CreatedAt)
		if err != nil {
			return nil, storeErr("scan encoding", err)
		}

		enc.Vector = fromVector(vec)
		encodings = append(encodings, enc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list encodings", err)
	}

	return encodings, nil
}

// ListEnrolledIDs returns the set of employee IDs with a stored
// encoding, used to annotate listings without loading vectors.
func (r *EncodingRepository) ListEnrolledIDs(ctx context.Context) (map[string]struct{}, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT employee_id FROM encodings`)
	if err != nil {
		return nil, storeErr("list enrolled ids", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan enrolled id", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list enrolled ids", err)
	}

	return ids, nil
}

func (r *EncodingRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM encodings`).Scan(&count)
	if err != nil {
		return 0, storeErr("count encodings", err)
	}
	return count, nil
}
