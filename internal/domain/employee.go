package domain

import (
	"strings"
	"time"
)

// maxEmployeeIDLength bounds externally assigned identifiers.
const maxEmployeeIDLength = 50

// Employee represents one enrollable person. Records are created by the
// admin frontend; this service only reads them and updates LastVerified.
type Employee struct {
	ID            string     `json:"employee_id"`
	Name          string     `json:"name,omitempty"`
	FirstName     string     `json:"firstName,omitempty"`
	LastName      string     `json:"lastName,omitempty"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Department    string     `json:"department,omitempty"`
	Position      string     `json:"position,omitempty"`
	FingerprintID string     `json:"fingerprintId,omitempty"`
	FaceURL       string     `json:"-"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	LastVerified  *time.Time `json:"last_verified,omitempty"`
}

// DisplayName merges the legacy single name field with the newer
// firstName/lastName pair. Older records carry only Name, newer ones only
// the split fields; neither shape is enforced by the store.
func (e *Employee) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	full := strings.TrimSpace(e.FirstName + " " + e.LastName)
	if full != "" {
		return full
	}
	return "Unknown"
}

// HasSourceImage reports whether the employee can be enrolled from their
// canonical image.
func (e *Employee) HasSourceImage() bool {
	return e.FaceURL != ""
}

// ValidateEmployeeID checks the externally assigned identifier format.
func ValidateEmployeeID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrValidationFailed.WithError(errEmptyEmployeeID)
	}
	if len(id) > maxEmployeeIDLength {
		return ErrValidationFailed.WithError(errEmployeeIDTooLong)
	}
	return nil
}
