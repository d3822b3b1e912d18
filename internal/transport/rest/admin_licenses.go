package rest

import (
	"net/http"

	"github.com/heartmarshall/amulet-backend/internal/service/ledger"
	"github.com/heartmarshall/amulet-backend/internal/service/license"
	"github.com/heartmarshall/amulet-backend/pkg/ctxutil"
)

type createLicenseRequest struct {
	Key    string  `json:"key"`
	MacID  *string `json:"mac_id"`
	Credit int64   `json:"credit"`
	Active *bool   `json:"active"`
}

type updateLicenseRequest struct {
	Key    *string `json:"key"`
	MacID  *string `json:"mac_id"`
	Credit *int64  `json:"credit"`
	Active *bool   `json:"active"`
	Note   string  `json:"note"`
}

type adjustCreditRequest struct {
	Delta int64  `json:"delta"`
	Note  string `json:"note"`
}

type licenseResponse struct {
	OK      bool       `json:"ok"`
	License licenseDTO `json:"license"`
}

type toggleResponse struct {
	OK     bool `json:"ok"`
	Active bool `json:"active"`
}

type creditResponse struct {
	OK     bool  `json:"ok"`
	Credit int64 `json:"credit"`
}

// ListLicenses handles GET /admin_api/licenses.
// Filters: q, min_credit, max_credit, active, date_from, date_to.
func (h *AdminHandler) ListLicenses(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := license.ListInput{
		Query:     q.String("q"),
		MinCredit: q.Int64("min_credit"),
		MaxCredit: q.Int64("max_credit"),
		Active:    q.Bool("active"),
		DateFrom:  q.String("date_from"),
		DateTo:    q.String("date_to"),
	}
	if err := q.Err(); err != nil {
		h.fail(w, r, err)
		return
	}

	items, err := h.licenses.List(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLicenseDTOs(items))
}

// GetLicense handles GET /admin_api/licenses/{id}.
func (h *AdminHandler) GetLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lic, err := h.licenses.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLicenseDTO(*lic))
}

// CreateLicense handles POST /admin_api/licenses.
func (h *AdminHandler) CreateLicense(w http.ResponseWriter, r *http.Request) {
	var req createLicenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}

	lic, err := h.licenses.Create(r.Context(), license.CreateInput{
		Key:      req.Key,
		DeviceID: req.MacID,
		Credit:   req.Credit,
		Active:   req.Active,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{OK: true, ID: lic.ID})
}

// UpdateLicense handles PUT /admin_api/licenses/{id}. Absent fields are
// left unchanged; "mac_id": "" unbinds the device.
func (h *AdminHandler) UpdateLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateLicenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}

	lic, err := h.licenses.Update(r.Context(), license.UpdateInput{
		ID:       id,
		Key:      req.Key,
		DeviceID: req.MacID,
		Credit:   req.Credit,
		Active:   req.Active,
		Note:     req.Note,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, licenseResponse{OK: true, License: toLicenseDTO(*lic)})
}

// DeleteLicense handles DELETE /admin_api/licenses/{id}.
func (h *AdminHandler) DeleteLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.licenses.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// ToggleLicense handles POST /admin_api/licenses/{id}/toggle.
func (h *AdminHandler) ToggleLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lic, err := h.licenses.Toggle(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{OK: true, Active: lic.Active})
}

// AdjustCredit handles POST /admin_api/licenses/{id}/credit.
func (h *AdminHandler) AdjustCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req adjustCreditRequest
	if err := decodeJSON(w, r, &req); err != nil {
		bad(w)
		return
	}

	note := req.Note
	if admin, ok := ctxutil.AdminUserFromCtx(r.Context()); ok && note == "" {
		note = "by " + admin
	}

	lic, err := h.credit.AdjustCredit(r.Context(), ledger.AdjustCreditInput{
		LicenseID: id,
		Delta:     req.Delta,
		Note:      note,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, creditResponse{OK: true, Credit: lic.Credit})
}
