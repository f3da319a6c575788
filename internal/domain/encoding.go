package domain

import (
	"time"

	"github.com/google/uuid"
)

// Encoding is one stored face encoding. At most one encoding exists per
// employee at any time; the store enforces this with a unique constraint
// and re-enrollment replaces the record.
type Encoding struct {
	ID             uuid.UUID `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	Vector         []float64 `json:"-"`
	SourceFilename string    `json:"source_filename,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// VerificationRecord is the audit row written after each verification
// attempt. Writing it is best-effort and never affects the outcome.
type VerificationRecord struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID *string   `json:"employee_id,omitempty"`
	Verified   bool      `json:"verified"`
	Confidence float64   `json:"confidence"`
	Distance   float64   `json:"distance"`
	LatencyMs  int64     `json:"latency_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// VerificationOutcome is the result of matching a probe image against the
// gallery.
type VerificationOutcome struct {
	Verified    bool
	EmployeeID  string
	DisplayName string
	Department  string
	Confidence  float64
	Distance    float64
	Reason      string
	LatencyMs   int64
}

// NotVerified reasons.
const (
	ReasonNoCandidates   = "no-candidates"
	ReasonBelowThreshold = "below-threshold"
)

// Bulk enrollment outcome statuses.
const (
	BulkProcessed = "processed"
	BulkSkipped   = "skipped"
	BulkError     = "error"
)

// BulkItem is the per-employee outcome of a bulk enrollment run.
type BulkItem struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	EncodingID string `json:"encoding_id,omitempty"`
}

// BulkResult aggregates a best-effort batch run. One employee's failure
// never aborts the rest.
type BulkResult struct {
	Total     int        `json:"total"`
	Processed int        `json:"processed"`
	Skipped   int        `json:"skipped"`
	Errors    int        `json:"errors"`
	Items     []BulkItem `json:"results"`
}

// Add records one item and updates the aggregate counters.
func (r *BulkResult) Add(item BulkItem) {
	r.Total++
	switch item.Status {
	case BulkProcessed:
		r.Processed++
	case BulkSkipped:
		r.Skipped++
	default:
		r.Errors++
	}
	r.Items = append(r.Items, item)
}
