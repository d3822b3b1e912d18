package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// JSON shapes of the admin API and backup files.

type licenseDTO struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	MacID     string    `json:"mac_id"`
	Credit    int64     `json:"credit"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toLicenseDTO(l domain.License) licenseDTO {
	var mac string
	if l.DeviceID != nil {
		mac = *l.DeviceID
	}
	return licenseDTO{
		ID:        l.ID,
		Key:       l.Key,
		MacID:     mac,
		Credit:    l.Credit,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLicenseDTOs(ls []domain.License) []licenseDTO {
	out := make([]licenseDTO, 0, len(ls))
	for _, l := range ls {
		out = append(out, toLicenseDTO(l))
	}
	return out
}

type apiKeyDTO struct {
	ID        uuid.UUID `json:"id"`
	APIKey    string    `json:"api_key"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toAPIKeyDTOs(ks []domain.APIKey) []apiKeyDTO {
	out := make([]apiKeyDTO, 0, len(ks))
	for _, k := range ks {
		out = append(out, apiKeyDTO{ID: k.ID, APIKey: k.Key, Status: k.Status.String(), CreatedAt: k.CreatedAt})
	}
	return out
}

type voiceDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	VoiceID   string    `json:"voice_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toVoiceDTO(v domain.Voice) voiceDTO {
	return voiceDTO{ID: v.ID, Name: v.Name, VoiceID: v.VoiceID, Active: v.Active, CreatedAt: v.CreatedAt}
}

func toVoiceDTOs(vs []domain.Voice) []voiceDTO {
	out := make([]voiceDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVoiceDTO(v))
	}
	return out
}

// clientVoiceDTO is the reduced voice shape served to client apps.
type clientVoiceDTO struct {
	Name    string `json:"name"`
	VoiceID string `json:"voice_id"`
}

type auditEntryDTO struct {
	ID         uuid.UUID  `json:"id"`
	LicenseID  *uuid.UUID `json:"license_id"`
	LicenseKey string     `json:"license_key"`
	Action     string     `json:"action"`
	CharCount  int64      `json:"char_count"`
	Delta      int64      `json:"delta"`
	Details    string     `json:"details"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toAuditEntryDTOs(es []domain.AuditEntry) []auditEntryDTO {
	out := make([]auditEntryDTO, 0, len(es))
	for _, e := range es {
		out = append(out, auditEntryDTO{
			ID:         e.ID,
			LicenseID:  e.LicenseID,
			LicenseKey: e.LicenseKey,
			Action:     e.Action.String(),
			CharCount:  e.CharCount,
			Delta:      e.Delta,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

type configDTO struct {
	LatestVersion      string     `json:"latest_version"`
	ForceUpdate        bool       `json:"force_update"`
	Maintenance        bool       `json:"maintenance"`
	MaintenanceMessage string     `json:"maintenance_message"`
	UpdateDescription  string     `json:"update_description"`
	UpdateLinks        []string   `json:"update_links"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

func toConfigDTO(c domain.AppConfig) configDTO {
	dto := configDTO{
		LatestVersion:      c.LatestVersion,
		ForceUpdate:        c.ForceUpdate,
		Maintenance:        c.Maintenance,
		MaintenanceMessage: c.MaintenanceMessage,
		UpdateDescription:  c.UpdateDescription,
		UpdateLinks:        c.Links(),
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		dto.UpdatedAt = &t
	}
	return dto
}

type backupDTO struct {
	ExportedAt time.Time       `json:"exported_at"`
	Licenses   []licenseDTO    `json:"licenses"`
	APIKeys    []apiKeyDTO     `json:"api_keys"`
	Voices     []voiceDTO      `json:"voices"`
	Config     configDTO       `json:"config"`
	Logs       []auditEntryDTO `json:"logs"`
}
