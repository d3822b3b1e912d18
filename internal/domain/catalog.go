package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is an upstream provider credential handed out by the key pool.
type APIKey struct {
	ID        uuid.UUID
	Key       string
	Status    APIKeyStatus
	CreatedAt time.Time
}

// IsActive reports whether the credential can be handed out.
func (k *APIKey) IsActive() bool { return k.Status == APIKeyStatusActive }

// Voice is a selectable voice option of the speech provider.
type Voice struct {
	ID        uuid.UUID
	Name      string
	VoiceID   string
	Active    bool
	CreatedAt time.Time
}

// AppConfig is the singleton remote configuration consumed by client apps.
// UpdateLinks keeps the stored representation; use Links for the list form.
type AppConfig struct {
	LatestVersion      string
	ForceUpdate        bool
	Maintenance        bool
	MaintenanceMessage string
	UpdateDescription  string
	UpdateLinks        string
	UpdatedAt          time.Time
}

// Links returns UpdateLinks normalized to a list.
func (c AppConfig) Links() []string {
	return NormalizeLinks(c.UpdateLinks)
}

// DefaultAppConfig returns the row written at first startup.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		LatestVersion:     "1.0.0",
		UpdateDescription: "Initial config",
		UpdateLinks:       "https://example.com/download",
	}
}
