package auditlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type auditRepo interface {
	Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// Service reads the credit audit log. Entries are written by the ledger and
// license services inside their own transactions; there is no update or
// delete path.
type Service struct {
	audit auditRepo
	log   *slog.Logger
}

// NewService creates a new audit log service.
func NewService(log *slog.Logger, audit auditRepo) *Service {
	return &Service{
		audit: audit,
		log:   log.With("service", "auditlog"),
	}
}

// QueryInput holds the audit log filters. Dates are YYYY-MM-DD; DateTo
// includes the whole day. Limit 0 selects DefaultLimit; larger values are
// capped at MaxLimit.
type QueryInput struct {
	Query     string
	LicenseID *uuid.UUID
	Action    string
	MinChars  *int64
	MaxChars  *int64
	DateFrom  string
	DateTo    string
	Limit     int
}

// Filter validates the input and converts it to a repository filter.
func (i QueryInput) Filter() (domain.AuditFilter, error) {
	var errs []domain.FieldError

	f := domain.AuditFilter{
		Query:     strings.TrimSpace(i.Query),
		LicenseID: i.LicenseID,
		MinChars:  i.MinChars,
		MaxChars:  i.MaxChars,
		Limit:     i.Limit,
	}

	if a := strings.TrimSpace(i.Action); a != "" {
		action := domain.AuditAction(a)
		if !action.IsValid() {
			errs = append(errs, domain.FieldError{Field: "action", Message: "must be debit, refund or adjust_credit"})
		} else {
			f.Action = &action
		}
	}
	if i.MinChars != nil && *i.MinChars < 0 {
		errs = append(errs, domain.FieldError{Field: "min_chars", Message: "must be non-negative"})
	}
	if i.MaxChars != nil && *i.MaxChars < 0 {
		errs = append(errs, domain.FieldError{Field: "max_chars", Message: "must be non-negative"})
	}

	from, to, err := domain.ParseDateRange(i.DateFrom, i.DateTo)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	}
	f.From, f.To = from, to

	switch {
	case i.Limit < 0:
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	case i.Limit == 0:
		f.Limit = DefaultLimit
	case i.Limit > MaxLimit:
		f.Limit = MaxLimit
	}

	if len(errs) > 0 {
		return domain.AuditFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

// Query returns matching entries, newest first.
func (s *Service) Query(ctx context.Context, input QueryInput) ([]domain.AuditEntry, error) {
	f, err := input.Filter()
	if err != nil {
		return nil, err
	}

	entries, err := s.audit.Query(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	return entries, nil
}
