package license

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const maxKeyLength = 255

// ListInput holds the admin list filters. Dates are YYYY-MM-DD.
type ListInput struct {
	Query     string
	MinCredit *int64
	MaxCredit *int64
	Active    *bool
	DateFrom  string
	DateTo    string
}

// Filter validates the input and converts it to a repository filter.
func (i ListInput) Filter() (domain.LicenseFilter, error) {
	var errs []domain.FieldError
	if i.MinCredit != nil && *i.MinCredit < 0 {
		errs = append(errs, domain.FieldError{Field: "min_credit", Message: "must be non-negative"})
	}
	if i.MaxCredit != nil && *i.MaxCredit < 0 {
		errs = append(errs, domain.FieldError{Field: "max_credit", Message: "must be non-negative"})
	}

	var from, to *time.Time
	start, end, err := domain.ParseDateRange(i.DateFrom, i.DateTo)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	} else {
		from, to = start, end
	}

	if len(errs) > 0 {
		return domain.LicenseFilter{}, domain.NewValidationErrors(errs)
	}
	return domain.LicenseFilter{
		Query:     strings.TrimSpace(i.Query),
		MinCredit: i.MinCredit,
		MaxCredit: i.MaxCredit,
		Active:    i.Active,
		From:      from,
		To:        to,
	}, nil
}

// CreateInput holds the parameters for issuing a license.
// Active defaults to true when nil.
type CreateInput struct {
	Key      string
	DeviceID *string
	Credit   int64
	Active   *bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = appendKeyErrors(errs, i.Key)
	if i.Credit < 0 {
		errs = append(errs, domain.FieldError{Field: "credit", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial admin edit. Nil fields are left untouched;
// DeviceID pointing to an empty string unbinds the license.
type UpdateInput struct {
	ID       uuid.UUID
	Key      *string
	DeviceID *string
	Credit   *int64
	Active   *bool
	Note     string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Key != nil {
		errs = appendKeyErrors(errs, *i.Key)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendKeyErrors(errs []domain.FieldError, key string) []domain.FieldError {
	key = strings.TrimSpace(key)
	if key == "" {
		return append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if len(key) > maxKeyLength {
		return append(errs, domain.FieldError{Field: "key", Message: "max 255 characters"})
	}
	return errs
}

// trimOrNil trims whitespace. Returns nil if s is nil.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
