package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func testVector() pgvector.Vector {
	floats := make([]float32, 128)
	for i := range floats {
		floats[i] = float32(i) / 128
	}
	return pgvector.NewVector(floats)
}

// EncodingRepository tests

func TestEncodingRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful create",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO encodings`).
					WithArgs(pgxmock.AnyArg(), "EMP001", pgxmock.AnyArg(), "EMP001.jpg").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
			wantErr: nil,
		},
		{
			name: "duplicate employee maps to already enrolled",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO encodings`).
					WithArgs(pgxmock.AnyArg(), "EMP001", pgxmock.AnyArg(), "EMP001.jpg").
					WillReturnError(fmt.Errorf(`ERROR: duplicate key value violates unique constraint "encodings_employee_id_key" (SQLSTATE 23505)`))
			},
			wantErr: domain.ErrAlreadyEnrolled,
		},
		{
			name: "deadline expiry maps to store timeout",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO encodings`).
					WithArgs(pgxmock.AnyArg(), "EMP001", pgxmock.AnyArg(), "EMP001.jpg").
					WillReturnError(context.DeadlineExceeded)
			},
			wantErr: domain.ErrStoreTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.mockSetup(mock)

			repo := NewEncodingRepository(mock)
			enc := &domain.Encoding{
				EmployeeID:     "EMP001",
				Vector:         fromVector(testVector()),
				SourceFilename: "EMP001.jpg",
			}

			err := repo.Create(context.Background(), enc)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, enc.ID)
				assert.Equal(t, now, enc.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEncodingRepository_GetByEmployeeID(t *testing.T) {
	encID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful retrieval",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "employee_id", "embedding", "source_filename", "created_at"}).
					AddRow(encID, "EMP001", testVector(), "EMP001.jpg", now)
				mock.ExpectQuery(`SELECT id, employee_id, embedding, .+ FROM encodings WHERE employee_id = \$1`).
					WithArgs("EMP001").
					WillReturnRows(rows)
			},
			wantErr: nil,
		},
		{
			name: "not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, employee_id, embedding, .+ FROM encodings WHERE employee_id = \$1`).
					WithArgs("EMP001").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrEncodingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.mockSetup(mock)

			repo := NewEncodingRepository(mock)
			enc, err := repo.GetByEmployeeID(context.Background(), "EMP001")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, enc)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "EMP001", enc.EmployeeID)
				assert.Len(t, enc.Vector, 128)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEncodingRepository_DeleteByEmployeeID(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(`DELETE FROM encodings WHERE employee_id = \$1`).
		WithArgs("EMP001").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewEncodingRepository(mock)
	deleted, err := repo.DeleteByEmployeeID(context.Background(), "EMP001")

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncodingRepository_DeleteByEmployeeID_Absent(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(`DELETE FROM encodings WHERE employee_id = \$1`).
		WithArgs("EMP404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewEncodingRepository(mock)
	deleted, err := repo.DeleteByEmployeeID(context.Background(), "EMP404")

	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestEncodingRepository_ListAll(t *testing.T) {
	now := time.Now()
	mock := newMockPool(t)

	rows := pgxmock.NewRows([]string{"id", "employee_id", "embedding", "source_filename", "created_at"}).
		AddRow(uuid.New(), "EMP001", testVector(), "EMP001.jpg", now).
		AddRow(uuid.New(), "EMP002", testVector(), "EMP002.jpg", now)
	mock.ExpectQuery(`SELECT id, employee_id, embedding, .+ FROM encodings ORDER BY employee_id`).
		WillReturnRows(rows)

	repo := NewEncodingRepository(mock)
	encodings, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, encodings, 2)
	assert.Equal(t, "EMP001", encodings[0].EmployeeID)
	assert.Len(t, encodings[0].Vector, 128)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncodingRepository_ListEnrolledIDs(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT employee_id FROM encodings`).
		WillReturnRows(pgxmock.NewRows([]string{"employee_id"}).AddRow("EMP001").AddRow("EMP003"))

	repo := NewEncodingRepository(mock)
	ids, err := repo.ListEnrolledIDs(context.Background())

	require.NoError(t, err)
	assert.Contains(t, ids, "EMP001")
	assert.Contains(t, ids, "EMP003")
	assert.NotContains(t, ids, "EMP002")
}

// EmployeeRepository tests

func employeeRows(id string, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "first_name", "last_name", "email", "phone",
		"department", "position", "fingerprint_id", "face_url",
		"is_active", "created_at", "last_verified",
	}).AddRow(
		id, "", "Amira", "Ben Salem", "amira@example.com", "",
		"Engineering", "Developer", "", "https://img.example.com/emp.jpg",
		true, now, nil,
	)
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful retrieval",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM employees WHERE id = \$1`).
					WithArgs("EMP001").
					WillReturnRows(employeeRows("EMP001", now))
			},
		},
		{
			name: "not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM employees WHERE id = \$1`).
					WithArgs("EMP001").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrEmployeeNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM employees WHERE id = \$1`).
					WithArgs("EMP001").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.mockSetup(mock)

			repo := NewEmployeeRepository(mock)
			emp, err := repo.GetByID(context.Background(), "EMP001")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, emp)
				if errors.Is(tt.wantErr, domain.ErrEmployeeNotFound) {
					assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "EMP001", emp.ID)
				assert.Equal(t, "Amira Ben Salem", emp.DisplayName())
				assert.Nil(t, emp.LastVerified)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeRepository_List(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT .+ FROM employees ORDER BY id`).
		WillReturnRows(employeeRows("EMP001", time.Now()))

	repo := NewEmployeeRepository(mock)
	employees, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "EMP001", employees[0].ID)
}

func TestEmployeeRepository_UpdateLastVerified(t *testing.T) {
	now := time.Now()

	t.Run("updates existing employee", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE employees SET last_verified_at = \$2 WHERE id = \$1`).
			WithArgs("EMP001", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewEmployeeRepository(mock)
		require.NoError(t, repo.UpdateLastVerified(context.Background(), "EMP001", now))
	})

	t.Run("missing employee", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE employees SET last_verified_at = \$2 WHERE id = \$1`).
			WithArgs("EMP404", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewEmployeeRepository(mock)
		err := repo.UpdateLastVerified(context.Background(), "EMP404", now)
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}

func TestEmployeeRepository_Count(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	repo := NewEmployeeRepository(mock)
	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

// VerificationRepository tests

func TestVerificationRepository_Create(t *testing.T) {
	now := time.Now()
	mock := newMockPool(t)

	employeeID := "EMP001"
	mock.ExpectQuery(`INSERT INTO verifications`).
		WithArgs(pgxmock.AnyArg(), &employeeID, true, 87.5, 0.125, int64(210)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewVerificationRepository(mock)
	record := &domain.VerificationRecord{
		EmployeeID: &employeeID,
		Verified:   true,
		Confidence: 87.5,
		Distance:   0.125,
		LatencyMs:  210,
	}

	require.NoError(t, repo.Create(context.Background(), record))
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// helper tests

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.True(t, isUniqueViolation(errors.New("SQLSTATE 23505")))
	assert.True(t, isUniqueViolation(errors.New(`duplicate key value violates unique constraint "encodings_employee_id_key"`)))
}

func TestBoundCtx(t *testing.T) {
	t.Run("applies a deadline", func(t *testing.T) {
		ctx, cancel := boundCtx(context.Background(), time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
	})

	t.Run("zero timeout leaves the context unbounded", func(t *testing.T) {
		ctx, cancel := boundCtx(context.Background(), 0)
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestEncodingRepository_WithTimeout(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT employee_id FROM encodings`).
		WillReturnRows(pgxmock.NewRows([]string{"employee_id"})).
		WillDelayFor(200 * time.Millisecond)

	repo := NewEncodingRepository(mock).WithTimeout(5 * time.Millisecond)
	_, err := repo.ListEnrolledIDs(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreTimeout)
}

func TestEmployeeRepository_WithTimeout(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0)).
		WillDelayFor(200 * time.Millisecond)

	repo := NewEmployeeRepository(mock).WithTimeout(5 * time.Millisecond)
	_, err := repo.Count(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreTimeout)
}
