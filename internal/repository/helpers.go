package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// boundCtx caps a store call at timeout. A zero timeout leaves the
// caller's context untouched.
func boundCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// isUniqueViolation checks if the error is a unique constraint violation
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "unique") ||
		strings.Contains(errMsg, "duplicate key")
}

// storeErr wraps a store failure, surfacing deadline expiry as a
// timeout so callers never mistake a slow store for an empty one.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrStoreTimeout.WithError(fmt.Errorf("%s: %w", op, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toVector(values []float64) pgvector.Vector {
	floats := make([]float32, len(values))
	for i, v := range values {
		floats[i] = float32(v)
	}
	return pgvector.NewVector(floats)
}

func fromVector(vec pgvector.Vector) []float64 {
	slice := vec.Slice()
	if slice == nil {
		return nil
	}
	values := make([]float64, len(slice))
	for i, v := range slice {
		values[i] = float64(v)
	}
	return values
}
