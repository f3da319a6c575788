package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// VerificationService interface for the service
type VerificationService interface {
	Verify(ctx context.Context, image []byte) (*domain.VerificationOutcome, error)
	Threshold() float64
}

// VerifyHandler handles verification requests
type VerifyHandler struct {
	service VerificationService
	logger  *slog.Logger
}

func NewVerifyHandler(service VerificationService, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{
		service: service,
		logger:  logger,
	}
}

// VerifyResponse response for verify endpoint. Distance is only
// present on a verified match; a rejection has no meaningful distance
// and a literal 0 would read as a perfect match.
type VerifyResponse struct {
	Verified   bool     `json:"verified"`
	EmployeeID string   `json:"employee_id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Department string   `json:"department,omitempty"`
	Confidence float64  `json:"confidence"`
	Distance   *float64 `json:"distance,omitempty"`
	Threshold  float64  `json:"threshold"`
	Reason     string   `json:"reason,omitempty"`
	LatencyMs  int64    `json:"latency_ms"`
}

// Verify POST /verify - match an uploaded image against the gallery
func (h *VerifyHandler) Verify(c *fiber.Ctx) error {
	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	outcome, err := h.service.Verify(c.Context(), imageBytes)
	if err != nil {
		return err
	}

	resp := VerifyResponse{
		Verified:   outcome.Verified,
		EmployeeID: outcome.EmployeeID,
		Name:       outcome.DisplayName,
		Department: outcome.Department,
		Confidence: outcome.Confidence,
		Threshold:  h.service.Threshold(),
		Reason:     outcome.Reason,
		LatencyMs:  outcome.LatencyMs,
	}
	if outcome.Verified {
		resp.Distance = &outcome.Distance
	}

	return c.JSON(resp)
}
