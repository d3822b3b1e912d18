package rest

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
	"github.com/heartmarshall/amulet-backend/internal/service/catalog"
	"github.com/heartmarshall/amulet-backend/internal/service/keypool"
)

type apiKeyRequest struct {
	APIKey *string              `json:"api_key"`
	Status *domain.APIKeyStatus `json:"status"`
}

type voiceRequest struct {
	Name    *string `json:"name"`
	VoiceID *string `json:"voice_id"`
	Active  *bool   `json:"active"`
}

type importResponse struct {
	OK      bool `json:"ok"`
	Added   int  `json:"added"`
	Skipped int  `json:"skipped"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ---------------------------------------------------------------------------
// API keys
// ---------------------------------------------------------------------------

// ListAPIKeys handles GET /admin_api/apikeys.
func (h *AdminHandler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.apiKeys.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAPIKeyDTOs(keys))
}

// CreateAPIKey handles POST /admin_api/apikeys.
func (h *AdminHandler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req apiKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}
	key, err := h.apiKeys.Create(r.Context(), keypool.CreateInput{APIKey: deref(req.APIKey), Status: req.Status})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{OK: true, ID: key.ID})
}

// UpdateAPIKey handles PUT /admin_api/apikeys/{id}.
func (h *AdminHandler) UpdateAPIKey(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req apiKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}
	if _, err := h.apiKeys.Update(r.Context(), keypool.UpdateInput{ID: id, APIKey: req.APIKey, Status: req.Status}); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// DeleteAPIKey handles DELETE /admin_api/apikeys/{id}.
func (h *AdminHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.apiKeys.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// ---------------------------------------------------------------------------
// Voices
// ---------------------------------------------------------------------------

// ListVoices handles GET /admin_api/voices.
func (h *AdminHandler) ListVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := h.voices.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoiceDTOs(voices))
}

// CreateVoice handles POST /admin_api/voices.
func (h *AdminHandler) CreateVoice(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}
	v, err := h.voices.Create(r.Context(), catalog.CreateInput{
		Name:    deref(req.Name),
		VoiceID: deref(req.VoiceID),
		Active:  req.Active,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{OK: true, ID: v.ID})
}

// UpdateVoice handles PUT /admin_api/voices/{id}.
func (h *AdminHandler) UpdateVoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req voiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}
	if _, err := h.voices.Update(r.Context(), catalog.UpdateInput{
		ID:      id,
		Name:    req.Name,
		VoiceID: req.VoiceID,
		Active:  req.Active,
	}); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// DeleteVoice handles DELETE /admin_api/voices/{id}.
func (h *AdminHandler) DeleteVoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.voices.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// UploadVoices handles POST /admin_api/voices/upload: a multipart "file"
// field holding a .txt list of name:voice_id lines.
func (h *AdminHandler) UploadVoices(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, codeInvalidRequest, "file too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeInvalidRequest, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "multipart form expected")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		h.fail(w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".txt") {
		h.fail(w, r, domain.NewValidationError("file", "must be a .txt file"))
		return
	}

	result, err := h.voices.Import(r.Context(), file)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{OK: true, Added: result.Added, Skipped: result.Skipped})
}
