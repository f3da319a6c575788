package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

type EmployeeRepository struct {
	pool    PgxPool
	timeout time.Duration
}

func NewEmployeeRepository(pool PgxPool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// WithTimeout bounds every store call so a hung database surfaces as
// a timeout instead of stalling the request.
func (r *EmployeeRepository) WithTimeout(timeout time.Duration) *EmployeeRepository {
	r.timeout = timeout
	return r
}

// Profile columns are nullable in the admin system's schema, so text
// fields are coalesced at the query.
const employeeColumns = `id, COALESCE(name, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(department, ''), COALESCE(position, ''), COALESCE(fingerprint_id, ''), COALESCE(face_url, ''), is_active, created_at, last_verified_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.Department,
		&e.Position,
		&e.FingerprintID,
		&e.FaceURL,
		&e.IsActive,
		&e.CreatedAt,
		&e.LastVerified,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, storeErr("get employee", err)
	}

	return emp, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, storeErr("scan employee", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list employees", err)
	}

	return employees, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, storeErr("count employees", err)
	}
	return count, nil
}

func (r *EmployeeRepository) UpdateLastVerified(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE employees
		SET last_verified_at = $2
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		return storeErr("update last_verified", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}

	return nil
}
