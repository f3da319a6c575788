package service

import (
	"context"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// EmployeeListing is one entry of the employee directory, annotated with
// enrollment state.
type EmployeeListing struct {
	domain.Employee
	DisplayName string `json:"display_name"`
	HasFaceData bool   `json:"has_face_data"`
}

// DirectoryService serves the read-only employee directory and the admin
// coverage stats.
type DirectoryService struct {
	employeeRepo EmployeeRepositoryInterface
	encodingRepo EncodingRepositoryInterface
}

func NewDirectoryService(employeeRepo EmployeeRepositoryInterface, encodingRepo EncodingRepositoryInterface) *DirectoryService {
	return &DirectoryService{
		employeeRepo: employeeRepo,
		encodingRepo: encodingRepo,
	}
}

// List returns every employee with their resolved display name and
// whether an encoding is on file. Enrollment state comes from a single
// id-set query, not one lookup per employee.
func (s *DirectoryService) List(ctx context.Context) ([]EmployeeListing, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.encodingRepo.ListEnrolledIDs(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]EmployeeListing, len(employees))
	for i, emp := range employees {
		_, has := enrolled[emp.ID]
		listings[i] = EmployeeListing{
			Employee:    emp,
			DisplayName: emp.DisplayName(),
			HasFaceData: has,
		}
	}

	return listings, nil
}

// Stats reports enrollment coverage. Encodings can outnumber enrolled
// employees when orphan rows exist, so both counts are reported.
func (s *DirectoryService) Stats(ctx context.Context) (*domain.SystemStats, error) {
	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.encodingRepo.ListEnrolledIDs(ctx)
	if err != nil {
		return nil, err
	}

	encodings, err := s.encodingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	with := len(enrolled)
	without := total - with
	if without < 0 {
		without = 0
	}

	return &domain.SystemStats{
		TotalEmployees:   total,
		WithEncodings:    with,
		WithoutEncodings: without,
		TotalEncodings:   encodings,
	}, nil
}
