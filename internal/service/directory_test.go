package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

func TestDirectoryService_List(t *testing.T) {
	er := new(MockEmployeeRepository)
	cr := new(MockEncodingRepository)

	er.On("List", mock.Anything).Return([]domain.Employee{
		{ID: "EMP001", Name: "Oussema Hleli"},
		{ID: "EMP002", FirstName: "Amira", LastName: "Ben Salem"},
		{ID: "EMP003"},
	}, nil)
	cr.On("ListEnrolledIDs", mock.Anything).Return(map[string]struct{}{
		"EMP001": {},
	}, nil)

	svc := NewDirectoryService(er, cr)
	listings, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.True(t, listings[0].HasFaceData)
	assert.Equal(t, "Oussema Hleli", listings[0].DisplayName)
	assert.False(t, listings[1].HasFaceData)
	assert.Equal(t, "Amira Ben Salem", listings[1].DisplayName)
	assert.Equal(t, "Unknown", listings[2].DisplayName)
}

func TestDirectoryService_Stats(t *testing.T) {
	er := new(MockEmployeeRepository)
	cr := new(MockEncodingRepository)

	er.On("Count", mock.Anything).Return(10, nil)
	cr.On("ListEnrolledIDs", mock.Anything).Return(map[string]struct{}{
		"EMP001": {}, "EMP002": {}, "EMP003": {},
	}, nil)
	cr.On("Count", mock.Anything).Return(4, nil)

	svc := NewDirectoryService(er, cr)
	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, 3, stats.WithEncodings)
	assert.Equal(t, 7, stats.WithoutEncodings)
	assert.Equal(t, 4, stats.TotalEncodings)
}

func TestDirectoryService_Stats_StoreError(t *testing.T) {
	er := new(MockEmployeeRepository)
	er.On("Count", mock.Anything).Return(0, domain.ErrStoreUnavailable)

	svc := NewDirectoryService(er, new(MockEncodingRepository))
	_, err := svc.Stats(context.Background())

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
