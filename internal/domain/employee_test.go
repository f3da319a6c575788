package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		employee Employee
		want     string
	}{
		{
			name:     "legacy single name field",
			employee: Employee{Name: "Amira Ben Salah"},
			want:     "Amira Ben Salah",
		},
		{
			name:     "first and last name",
			employee: Employee{FirstName: "Amira", LastName: "Ben Salah"},
			want:     "Amira Ben Salah",
		},
		{
			name:     "single name wins over split fields",
			employee: Employee{Name: "A. Ben Salah", FirstName: "Amira", LastName: "Ben Salah"},
			want:     "A. Ben Salah",
		},
		{
			name:     "first name only",
			employee: Employee{FirstName: "Amira"},
			want:     "Amira",
		},
		{
			name:     "no name fields",
			employee: Employee{ID: "E42"},
			want:     "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.employee.DisplayName())
		})
	}
}

func TestValidateEmployeeID(t *testing.T) {
	assert.NoError(t, ValidateEmployeeID("EMP-001"))
	assert.NoError(t, ValidateEmployeeID("a"))

	err := ValidateEmployeeID("")
	assert.ErrorIs(t, err, ErrValidationFailed)

	err = ValidateEmployeeID("   ")
	assert.ErrorIs(t, err, ErrValidationFailed)

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}
	err = ValidateEmployeeID(string(long))
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAppError_Is(t *testing.T) {
	wrapped := ErrAlreadyEnrolled.WithError(errors.New("unique violation"))
	assert.ErrorIs(t, wrapped, ErrAlreadyEnrolled)
	assert.NotErrorIs(t, wrapped, ErrEmployeeNotFound)
}

func TestBulkResult_Add(t *testing.T) {
	var r BulkResult
	r.Add(BulkItem{EmployeeID: "E1", Status: BulkProcessed})
	r.Add(BulkItem{EmployeeID: "E2", Status: BulkSkipped, Reason: "no face URL"})
	r.Add(BulkItem{EmployeeID: "E3", Status: BulkError, Reason: "no face detected"})

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.Processed)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Errors)
	assert.Len(t, r.Items, 3)
	assert.Equal(t, r.Total, r.Processed+r.Skipped+r.Errors)
}
