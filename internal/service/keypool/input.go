package keypool

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// CreateInput holds the parameters for adding a credential.
// Status defaults to active when nil.
type CreateInput struct {
	APIKey string
	Status *domain.APIKeyStatus
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.APIKey) == "" {
		errs = append(errs, domain.FieldError{Field: "api_key", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active or inactive"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial edit of a credential.
type UpdateInput struct {
	ID     uuid.UUID
	APIKey *string
	Status *domain.APIKeyStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.APIKey != nil && strings.TrimSpace(*i.APIKey) == "" {
		errs = append(errs, domain.FieldError{Field: "api_key", Message: "must not be empty"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active or inactive"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
