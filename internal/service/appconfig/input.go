package appconfig

import (
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// UpdateInput holds a partial config edit. Nil fields are left untouched.
// UpdateLinks is stored as given: a comma-separated list or a JSON array.
type UpdateInput struct {
	LatestVersion      *string
	ForceUpdate        *bool
	Maintenance        *bool
	MaintenanceMessage *string
	UpdateDescription  *string
	UpdateLinks        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.LatestVersion != nil {
		v := strings.TrimSpace(*i.LatestVersion)
		if v == "" {
			errs = append(errs, domain.FieldError{Field: "latest_version", Message: "must not be empty"})
		}
		if len(v) > 64 {
			errs = append(errs, domain.FieldError{Field: "latest_version", Message: "max 64 characters"})
		}
	}
	if i.MaintenanceMessage != nil && len(*i.MaintenanceMessage) > 2000 {
		errs = append(errs, domain.FieldError{Field: "maintenance_message", Message: "max 2000 characters"})
	}
	if i.UpdateDescription != nil && len(*i.UpdateDescription) > 5000 {
		errs = append(errs, domain.FieldError{Field: "update_description", Message: "max 5000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) apply(cfg domain.AppConfig) domain.AppConfig {
	if i.LatestVersion != nil {
		cfg.LatestVersion = strings.TrimSpace(*i.LatestVersion)
	}
	if i.ForceUpdate != nil {
		cfg.ForceUpdate = *i.ForceUpdate
	}
	if i.Maintenance != nil {
		cfg.Maintenance = *i.Maintenance
	}
	if i.MaintenanceMessage != nil {
		cfg.MaintenanceMessage = *i.MaintenanceMessage
	}
	if i.UpdateDescription != nil {
		cfg.UpdateDescription = *i.UpdateDescription
	}
	if i.UpdateLinks != nil {
		cfg.UpdateLinks = strings.TrimSpace(*i.UpdateLinks)
	}
	return cfg
}
