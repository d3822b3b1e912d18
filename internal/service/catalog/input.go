package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// CreateInput holds the parameters for adding a voice.
// Active defaults to true when nil.
type CreateInput struct {
	Name    string
	VoiceID string
	Active  *bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.VoiceID) == "" {
		errs = append(errs, domain.FieldError{Field: "voice_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial edit of a voice.
type UpdateInput struct {
	ID      uuid.UUID
	Name    *string
	VoiceID *string
	Active  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.VoiceID != nil && strings.TrimSpace(*i.VoiceID) == "" {
		errs = append(errs, domain.FieldError{Field: "voice_id", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
