// Package service holds the enrollment and verification workflows that sit
// between the HTTP handlers and the repositories.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"path"
	"time"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
)

type EmployeeRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int, error)
	UpdateLastVerified(ctx context.Context, id string, at time.Time) error
}

type EncodingRepositoryInterface interface {
	Create(ctx context.Context, enc *domain.Encoding) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Encoding, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
	ListAll(ctx context.Context) ([]domain.Encoding, error)
	ListEnrolledIDs(ctx context.Context) (map[string]struct{}, error)
	Count(ctx context.Context) (int, error)
}

type VerificationRepositoryInterface interface {
	Create(ctx context.Context, v *domain.VerificationRecord) error
}

// ImageFetcher downloads an enrollment image by URL.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// EnrollmentService drives the one-encoding-per-employee lifecycle. The
// only path that replaces an existing encoding is Reenroll; everything
// else treats an enrolled employee as terminal.
type EnrollmentService struct {
	employeeRepo EmployeeRepositoryInterface
	encodingRepo EncodingRepositoryInterface
	encoder      provider.Encoder
	fetcher      ImageFetcher
	logger       *slog.Logger
}

func NewEnrollmentService(
	employeeRepo EmployeeRepositoryInterface,
	encodingRepo EncodingRepositoryInterface,
	encoder provider.Encoder,
	fetcher ImageFetcher,
	logger *slog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		employeeRepo: employeeRepo,
		encodingRepo: encodingRepo,
		encoder:      encoder,
		fetcher:      fetcher,
		logger:       logger,
	}
}

// Enroll encodes the image and stores the result for the employee. When
// the image contains several faces only the first is used. The store's
// unique constraint decides between concurrent enrollments, so the caller
// never sees a duplicate encoding even without a prior existence check.
func (s *EnrollmentService) Enroll(ctx context.Context, employeeID string, image []byte, sourceFilename string) (*domain.Encoding, error) {
	if err := domain.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	faces, err := s.encoder.Encode(ctx, image)
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, domain.ErrNoFaceDetected
	}
	if len(faces) > 1 {
		s.logger.Warn("multiple faces in enrollment image, using first",
			"employee_id", employeeID,
			"faces", len(faces),
		)
	}

	enc := &domain.Encoding{
		EmployeeID:     employeeID,
		Vector:         faces[0].Vector,
		SourceFilename: sourceFilename,
	}

	if err := s.encodingRepo.Create(ctx, enc); err != nil {
		return nil, err
	}

	s.logger.Info("employee enrolled",
		"employee_id", employeeID,
		"encoding_id", enc.ID,
	)

	return enc, nil
}

// EnrollFromURL downloads the image at rawURL and enrolls the employee
// with it. The enrollment check runs before the download so an already
// enrolled employee costs no fetch.
func (s *EnrollmentService) EnrollFromURL(ctx context.Context, employeeID, rawURL string) (*domain.Encoding, error) {
	if err := domain.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	if _, err := s.encodingRepo.GetByEmployeeID(ctx, employeeID); err == nil {
		return nil, domain.ErrAlreadyEnrolled
	} else if !errors.Is(err, domain.ErrEncodingNotFound) {
		return nil, err
	}

	image, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return s.Enroll(ctx, employeeID, image, filenameFromURL(rawURL))
}

// ProcessFromSource enrolls the employee from their canonical face image
// URL. Fails with ErrNoSourceImage when no URL is on record.
func (s *EnrollmentService) ProcessFromSource(ctx context.Context, employeeID string) (*domain.Encoding, error) {
	if err := domain.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.HasSourceImage() {
		return nil, domain.ErrNoSourceImage
	}

	if _, err := s.encodingRepo.GetByEmployeeID(ctx, employeeID); err == nil {
		return nil, domain.ErrAlreadyEnrolled
	} else if !errors.Is(err, domain.ErrEncodingNotFound) {
		return nil, err
	}

	image, err := s.fetcher.Fetch(ctx, emp.FaceURL)
	if err != nil {
		return nil, err
	}

	return s.Enroll(ctx, employeeID, image, filenameFromURL(emp.FaceURL))
}

// Reenroll discards any stored encoding for the employee and enrolls them
// again from their source image. Zero deleted rows is not an error; the
// outcome is the same fresh encoding either way.
func (s *EnrollmentService) Reenroll(ctx context.Context, employeeID string) (*domain.Encoding, error) {
	if err := domain.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.HasSourceImage() {
		return nil, domain.ErrNoSourceImage
	}

	deleted, err := s.encodingRepo.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	image, err := s.fetcher.Fetch(ctx, emp.FaceURL)
	if err != nil {
		return nil, err
	}

	enc, err := s.Enroll(ctx, employeeID, image, filenameFromURL(emp.FaceURL))
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee re-enrolled",
		"employee_id", employeeID,
		"replaced", deleted,
	)

	return enc, nil
}

// BulkProcess enrolls every unenrolled employee with a source image, or
// only the given ids when the list is non-empty. One employee's failure
// never aborts the rest; each outcome is reported individually.
func (s *EnrollmentService) BulkProcess(ctx context.Context, ids []string) (*domain.BulkResult, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, emp := range employees {
			ids = append(ids, emp.ID)
		}
	}

	result := &domain.BulkResult{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Add(s.processOne(ctx, id))
	}

	s.logger.Info("bulk enrollment finished",
		"total", result.Total,
		"processed", result.Processed,
		"skipped", result.Skipped,
		"errors", result.Errors,
	)

	return result, nil
}

func (s *EnrollmentService) processOne(ctx context.Context, employeeID string) domain.BulkItem {
	enc, err := s.ProcessFromSource(ctx, employeeID)
	if err == nil {
		return domain.BulkItem{
			EmployeeID: employeeID,
			Status:     domain.BulkProcessed,
			EncodingID: enc.ID.String(),
		}
	}

	item := domain.BulkItem{EmployeeID: employeeID, Status: domain.BulkError}
	switch {
	case errors.Is(err, domain.ErrAlreadyEnrolled), errors.Is(err, domain.ErrNoSourceImage):
		item.Status = domain.BulkSkipped
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		item.Reason = appErr.Code
	} else {
		item.Reason = err.Error()
	}

	if item.Status == domain.BulkError {
		s.logger.Error("bulk enrollment item failed",
			"employee_id", employeeID,
			"error", err,
		)
	}

	return item
}

func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return ""
	}
	return path.Base(u.Path)
}
