package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/match"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
)

// indexCutover is the gallery size at which verification switches from a
// linear scan to the HNSW index. Small galleries stay linear; the exact
// scan is cheap and has no index maintenance.
const indexCutover = 512

// VerificationService matches a probe image against the enrolled gallery.
type VerificationService struct {
	employeeRepo     EmployeeRepositoryInterface
	encodingRepo     EncodingRepositoryInterface
	verificationRepo VerificationRepositoryInterface
	encoder          provider.Encoder
	engine           *match.Engine
	index            *match.IndexSource
	logger           *slog.Logger
}

func NewVerificationService(
	employeeRepo EmployeeRepositoryInterface,
	encodingRepo EncodingRepositoryInterface,
	verificationRepo VerificationRepositoryInterface,
	encoder provider.Encoder,
	engine *match.Engine,
	logger *slog.Logger,
) *VerificationService {
	return &VerificationService{
		employeeRepo:     employeeRepo,
		encodingRepo:     encodingRepo,
		verificationRepo: verificationRepo,
		encoder:          encoder,
		engine:           engine,
		index:            match.NewIndexSource(0),
		logger:           logger,
	}
}

// Threshold returns the engine's acceptance threshold.
func (s *VerificationService) Threshold() float64 {
	return s.engine.Threshold()
}

// Verify encodes the probe image and searches the gallery for the best
// acceptable match. Dependency failures (encoder, store) surface as
// errors, never as a NotVerified outcome. The audit row and the
// last_verified stamp are best-effort; their failure is logged and the
// outcome stands.
func (s *VerificationService) Verify(ctx context.Context, image []byte) (*domain.VerificationOutcome, error) {
	start := time.Now()

	faces, err := s.encoder.Encode(ctx, image)
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, domain.ErrNoFaceDetected
	}
	query := faces[0].Vector

	encodings, err := s.encodingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(encodings) == 0 {
		outcome := s.notVerified(domain.ReasonNoCandidates, start)
		s.audit(ctx, nil, outcome)
		return outcome, nil
	}

	candidates := make([]match.Candidate, len(encodings))
	for i, enc := range encodings {
		candidates[i] = match.Candidate{EmployeeID: enc.EmployeeID, Vector: enc.Vector}
	}

	var source match.CandidateSource = match.SliceSource(candidates)
	if len(candidates) >= indexCutover {
		s.index.Rebuild(candidates)
		source = s.index
	}

	result, err := s.engine.FindBestMatch(ctx, query, source)
	if err != nil {
		return nil, err
	}

	if !result.Matched {
		outcome := s.notVerified(domain.ReasonBelowThreshold, start)
		s.audit(ctx, nil, outcome)
		return outcome, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, result.EmployeeID)
	if err != nil {
		// A matched encoding whose employee record is gone is an orphan
		// left by an out-of-band delete. Treat it as no match rather than
		// authenticating against a removed identity.
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			s.logger.Warn("matched encoding has no employee record",
				"employee_id", result.EmployeeID,
			)
			outcome := s.notVerified(domain.ReasonBelowThreshold, start)
			s.audit(ctx, nil, outcome)
			return outcome, nil
		}
		return nil, err
	}

	outcome := &domain.VerificationOutcome{
		Verified:    true,
		EmployeeID:  emp.ID,
		DisplayName: emp.DisplayName(),
		Department:  emp.Department,
		Confidence:  result.Confidence,
		Distance:    result.Distance,
		LatencyMs:   time.Since(start).Milliseconds(),
	}

	if err := s.employeeRepo.UpdateLastVerified(ctx, emp.ID, time.Now()); err != nil {
		s.logger.Error("update last_verified failed",
			"employee_id", emp.ID,
			"error", err,
		)
	}
	s.audit(ctx, &emp.ID, outcome)

	return outcome, nil
}

func (s *VerificationService) notVerified(reason string, start time.Time) *domain.VerificationOutcome {
	return &domain.VerificationOutcome{
		Verified:  false,
		Reason:    reason,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

func (s *VerificationService) audit(ctx context.Context, employeeID *string, outcome *domain.VerificationOutcome) {
	record := &domain.VerificationRecord{
		EmployeeID: employeeID,
		Verified:   outcome.Verified,
		Confidence: outcome.Confidence,
		Distance:   outcome.Distance,
		LatencyMs:  outcome.LatencyMs,
	}
	if err := s.verificationRepo.Create(ctx, record); err != nil {
		s.logger.Error("verification audit write failed", "error", err)
	}
}
