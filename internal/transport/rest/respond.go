package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// maxJSONBody caps request bodies of JSON endpoints.
const maxJSONBody = 1 << 20

// Error codes reported in the "error" field of failed responses.
const (
	codeInvalidRequest     = "invalid_request"
	codeValidation         = "validation"
	codeUnknownAction      = "unknown_action"
	codeNotFound           = "not_found"
	codeNoActiveKeys       = "no_active_keys"
	codeInactive           = "inactive"
	codeDeviceMismatch     = "device_mismatch"
	codeInsufficientCredit = "insufficient_credit"
	codeConflict           = "conflict"
	codeUnauthorized       = "unauthorized"
	codeInternal           = "internal"
)

type errorResponse struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error"`
	Msg    string            `json:"msg"`
	Credit *int64            `json:"credit,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Msg: msg})
}

// decodeJSON reads a single JSON object from the request body. An empty
// body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// handleError maps a service error onto the HTTP status and error envelope.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		insufficient *domain.InsufficientCreditError
		validation   *domain.ValidationError
	)

	switch {
	case errors.As(err, &insufficient):
		credit := insufficient.Credit
		writeJSON(w, http.StatusPaymentRequired, errorResponse{
			Error:  codeInsufficientCredit,
			Msg:    "insufficient credit",
			Credit: &credit,
		})
	case errors.As(err, &validation):
		fields := make(map[string]string, len(validation.Errors))
		for _, fe := range validation.Errors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  codeValidation,
			Msg:    validation.Error(),
			Fields: fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrInactive):
		writeError(w, http.StatusForbidden, codeInactive, "license inactive")
	case errors.Is(err, domain.ErrDeviceMismatch):
		writeError(w, http.StatusForbidden, codeDeviceMismatch, "license bound to another device")
	case errors.Is(err, domain.ErrNoActiveKeys):
		writeError(w, http.StatusNotFound, codeNoActiveKeys, "no active api keys")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
