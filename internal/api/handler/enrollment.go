package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// EnrollmentService interface for the service
type EnrollmentService interface {
	EnrollFromURL(ctx context.Context, employeeID, rawURL string) (*domain.Encoding, error)
	ProcessFromSource(ctx context.Context, employeeID string) (*domain.Encoding, error)
	Reenroll(ctx context.Context, employeeID string) (*domain.Encoding, error)
	BulkProcess(ctx context.Context, ids []string) (*domain.BulkResult, error)
}

// EnrollmentHandler handles enrollment requests
type EnrollmentHandler struct {
	service EnrollmentService
	logger  *slog.Logger
}

func NewEnrollmentHandler(service EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRequest body for the register endpoint
type RegisterRequest struct {
	EmployeeID   string `json:"employee_id"`
	FaceImageURL string `json:"face_image_url"`
}

// EnrollResponse response for enrollment endpoints
type EnrollResponse struct {
	EmployeeID     string `json:"employee_id"`
	EncodingID     string `json:"encoding_id"`
	SourceFilename string `json:"source_filename,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// BulkProcessRequest optional body for the bulk endpoint
type BulkProcessRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

func enrollResponse(enc *domain.Encoding) EnrollResponse {
	return EnrollResponse{
		EmployeeID:     enc.EmployeeID,
		EncodingID:     enc.ID.String(),
		SourceFilename: enc.SourceFilename,
		CreatedAt:      enc.CreatedAt.Format(time.RFC3339),
	}
}

// Register POST /register - enroll an employee from an image URL
func (h *EnrollmentHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		return domain.ErrValidationFailed.WithError(errors.New("employee_id is required"))
	}
	if strings.TrimSpace(req.FaceImageURL) == "" {
		return domain.ErrValidationFailed.WithError(errors.New("face_image_url is required"))
	}

	enc, err := h.service.EnrollFromURL(c.Context(), req.EmployeeID, req.FaceImageURL)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(enrollResponse(enc))
}

// Process POST /employees/:id/process - enroll from the employee's stored image URL
func (h *EnrollmentHandler) Process(c *fiber.Ctx) error {
	employeeID := strings.TrimSpace(c.Params("id"))
	if employeeID == "" {
		return domain.ErrValidationFailed.WithError(errors.New("employee id is required"))
	}

	enc, err := h.service.ProcessFromSource(c.Context(), employeeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(enrollResponse(enc))
}

// Reenroll POST /employees/:id/reenroll - replace the employee's encoding
func (h *EnrollmentHandler) Reenroll(c *fiber.Ctx) error {
	employeeID := strings.TrimSpace(c.Params("id"))
	if employeeID == "" {
		return domain.ErrValidationFailed.WithError(errors.New("employee id is required"))
	}

	enc, err := h.service.Reenroll(c.Context(), employeeID)
	if err != nil {
		return err
	}

	return c.JSON(enrollResponse(enc))
}

// BulkProcess POST /employees/process - enroll every pending employee
func (h *EnrollmentHandler) BulkProcess(c *fiber.Ctx) error {
	var req BulkProcessRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.ErrValidationFailed.WithError(err)
		}
	}

	result, err := h.service.BulkProcess(c.Context(), req.EmployeeIDs)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
