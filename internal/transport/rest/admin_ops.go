package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/amulet-backend/internal/domain"
	"github.com/heartmarshall/amulet-backend/internal/service/appconfig"
	"github.com/heartmarshall/amulet-backend/internal/service/auditlog"
)

// backupTimeLayout formats the timestamp embedded in backup file names.
const backupTimeLayout = "20060102_150405"

// linksField accepts update_links as either a JSON array of strings or the
// raw stored string (comma separated or a JSON array literal).
type linksField struct {
	value *string
}

func (l *linksField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '[':
		var links []string
		if err := json.Unmarshal(b, &links); err != nil {
			return err
		}
		s := strings.Join(domain.NormalizeLinks(strings.Join(links, ",")), ",")
		l.value = &s
		return nil
	default:
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		l.value = &s
		return nil
	}
}

type configRequest struct {
	LatestVersion      *string    `json:"latest_version"`
	ForceUpdate        *bool      `json:"force_update"`
	Maintenance        *bool      `json:"maintenance"`
	MaintenanceMessage *string    `json:"maintenance_message"`
	UpdateDescription  *string    `json:"update_description"`
	UpdateLinks        linksField `json:"update_links"`
}

type configUpdatedResponse struct {
	OK     bool      `json:"ok"`
	Config configDTO `json:"config"`
}

// ListLogs handles GET /admin_api/logs.
// Filters: q, license_id, action, min_chars, max_chars, date_from, date_to, limit.
func (h *AdminHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := auditlog.QueryInput{
		Query:     q.String("q"),
		LicenseID: q.UUID("license_id"),
		Action:    q.String("action"),
		MinChars:  q.Int64("min_chars"),
		MaxChars:  q.Int64("max_chars"),
		DateFrom:  q.String("date_from"),
		DateTo:    q.String("date_to"),
		Limit:     q.Int("limit"),
	}
	if err := q.Err(); err != nil {
		h.fail(w, r, err)
		return
	}

	entries, err := h.audit.Query(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditEntryDTOs(entries))
}

// GetConfig handles GET /admin_api/config.
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.config.Get(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConfigDTO(*cfg))
}

// UpdateConfig handles PUT /admin_api/config. Absent fields are kept.
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}

	cfg, err := h.config.Update(r.Context(), appconfig.UpdateInput{
		LatestVersion:      req.LatestVersion,
		ForceUpdate:        req.ForceUpdate,
		Maintenance:        req.Maintenance,
		MaintenanceMessage: req.MaintenanceMessage,
		UpdateDescription:  req.UpdateDescription,
		UpdateLinks:        req.UpdateLinks.value,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, configUpdatedResponse{OK: true, Config: toConfigDTO(*cfg)})
}

// Backup handles GET /admin_api/backup: every table as one JSON attachment.
func (h *AdminHandler) Backup(w http.ResponseWriter, r *http.Request) {
	snap, err := h.backup.Full(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeAttachment(w, "amulet_backup", snap.ExportedAt, backupDTO{
		ExportedAt: snap.ExportedAt,
		Licenses:   toLicenseDTOs(snap.Licenses),
		APIKeys:    toAPIKeyDTOs(snap.APIKeys),
		Voices:     toVoiceDTOs(snap.Voices),
		Config:     toConfigDTO(snap.Config),
		Logs:       toAuditEntryDTOs(snap.Logs),
	})
}

// BackupLicenses handles GET /admin_api/backup/licenses.
func (h *AdminHandler) BackupLicenses(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.backup.Licenses(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeAttachment(w, "amulet_licenses_backup", h.backup.Now(), toLicenseDTOs(licenses))
}

func writeAttachment(w http.ResponseWriter, prefix string, at time.Time, v any) {
	name := fmt.Sprintf("%s_%s.json", prefix, at.UTC().Format(backupTimeLayout))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v) //nolint:errcheck
}
