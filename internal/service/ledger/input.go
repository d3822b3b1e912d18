package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// MaxCount bounds a single debit or refund.
const MaxCount = 1_000_000_000

// CheckInput holds the parameters for validating and binding a license.
type CheckInput struct {
	Key      string
	DeviceID string
}

// Validate checks all fields and collects all errors.
func (i CheckInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Key) == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if strings.TrimSpace(i.DeviceID) == "" {
		errs = append(errs, domain.FieldError{Field: "mac", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DebitInput holds the parameters for consuming credit.
type DebitInput struct {
	Key      string
	DeviceID string
	Count    int64
	Model    string
}

// Validate checks all fields and collects all errors.
func (i DebitInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Key) == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if strings.TrimSpace(i.DeviceID) == "" {
		errs = append(errs, domain.FieldError{Field: "mac", Message: "required"})
	}
	errs = appendCountErrors(errs, i.Count)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefundInput holds the parameters for returning credit.
// DeviceID is optional: a server-side compensating refund may omit it.
type RefundInput struct {
	Key      string
	DeviceID string
	Count    int64
	Reason   string
}

// Validate checks all fields and collects all errors.
func (i RefundInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Key) == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	errs = appendCountErrors(errs, i.Count)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdjustCreditInput holds the parameters for an admin credit adjustment.
type AdjustCreditInput struct {
	LicenseID uuid.UUID
	Delta     int64
	Note      string
}

// Validate checks all fields and collects all errors.
func (i AdjustCreditInput) Validate() error {
	var errs []domain.FieldError
	if i.LicenseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "license_id", Message: "required"})
	}
	if i.Delta == 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must be non-zero"})
	}
	if i.Delta > MaxCount || i.Delta < -MaxCount {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "out of range"})
	}
	if len(i.Note) > 500 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendCountErrors(errs []domain.FieldError, count int64) []domain.FieldError {
	if count <= 0 {
		return append(errs, domain.FieldError{Field: "count", Message: "must be positive"})
	}
	if count > MaxCount {
		return append(errs, domain.FieldError{Field: "count", Message: "out of range"})
	}
	return errs
}
