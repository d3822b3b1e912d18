package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/amulet-backend/internal/domain"
	"github.com/heartmarshall/amulet-backend/internal/service/ledger"
)

type ledgerService interface {
	Check(ctx context.Context, input ledger.CheckInput) (*ledger.CheckResult, error)
	Debit(ctx context.Context, input ledger.DebitInput) (*ledger.DebitResult, error)
	Refund(ctx context.Context, input ledger.RefundInput) (*ledger.RefundResult, error)
}

type keyPool interface {
	Acquire(ctx context.Context) (*domain.APIKey, error)
	Release(ctx context.Context) error
	Deactivate(ctx context.Context, apiKey string) error
}

type activeVoiceLister interface {
	ListActive(ctx context.Context) ([]domain.Voice, error)
}

type configReader interface {
	Get(ctx context.Context) (*domain.AppConfig, error)
}

// errInvalidPayload marks a body that does not decode into the action's payload.
var errInvalidPayload = errors.New("invalid payload")

// action decodes the raw request body into its own payload type and runs.
type action func(ctx context.Context, raw json.RawMessage) (any, error)

// bind adapts a typed action handler to the raw dispatch signature.
func bind[P any](fn func(ctx context.Context, p P) (any, error)) action {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var p P
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, errors.Join(errInvalidPayload, err)
			}
		}
		return fn(ctx, p)
	}
}

// ClientHandler serves the action-dispatched client API.
type ClientHandler struct {
	ledger  ledgerService
	keys    keyPool
	voices  activeVoiceLister
	config  configReader
	actions map[string]action
	log     *slog.Logger
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(
	ledger ledgerService,
	keys keyPool,
	voices activeVoiceLister,
	config configReader,
	logger *slog.Logger,
) *ClientHandler {
	h := &ClientHandler{
		ledger: ledger,
		keys:   keys,
		voices: voices,
		config: config,
		log:    logger.With("handler", "client"),
	}
	h.actions = map[string]action{
		"check":              bind(h.check),
		"debit":              bind(h.debit),
		"refund":             bind(h.refund),
		"next_api_key":       bind(h.nextAPIKey),
		"release_api_key":    bind(h.releaseAPIKey),
		"deactivate_api_key": bind(h.deactivateAPIKey),
		"get_voices":         bind(h.getVoices),
		"get_config":         bind(h.getConfig),
	}
	return h
}

// Actions returns the supported action names, sorted.
func (h *ClientHandler) Actions() []string {
	names := make([]string, 0, len(h.actions))
	for name := range h.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch handles POST /api and POST /api/{action}. The path parameter
// wins over the "action" field of the body.
func (h *ClientHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "request body must be a JSON object")
		return
	}

	name := chi.URLParam(r, "action")
	if name == "" && len(raw) > 0 {
		var envelope struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "request body must be a JSON object")
			return
		}
		name = envelope.Action
	}
	name = strings.ToLower(strings.TrimSpace(name))

	run, ok := h.actions[name]
	if !ok {
		writeError(w, http.StatusBadRequest, codeUnknownAction, "unknown action: "+name)
		return
	}

	resp, err := run(r.Context(), raw)
	if err != nil {
		if errors.Is(err, errInvalidPayload) {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid payload for action "+name)
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Payloads and responses
// ---------------------------------------------------------------------------

type checkRequest struct {
	Key string `json:"key"`
	Mac string `json:"mac"`
}

type checkResponse struct {
	OK     bool  `json:"ok"`
	Credit int64 `json:"credit"`
	Active bool  `json:"active"`
}

type debitRequest struct {
	Key   string `json:"key"`
	Mac   string `json:"mac"`
	Count int64  `json:"count"`
	Model string `json:"model"`
}

type debitResponse struct {
	OK      bool  `json:"ok"`
	Debited int64 `json:"debited"`
	Credit  int64 `json:"credit"`
}

type refundRequest struct {
	Key    string `json:"key"`
	Mac    string `json:"mac"`
	Count  int64  `json:"count"`
	Reason string `json:"reason"`
}

type refundResponse struct {
	OK       bool  `json:"ok"`
	Refunded int64 `json:"refunded"`
	Credit   int64 `json:"credit"`
}

type noPayload struct{}

type apiKeyResponse struct {
	OK     bool   `json:"ok"`
	APIKey string `json:"api_key,omitempty"`
	Status string `json:"status"`
}

type deactivateRequest struct {
	APIKey string `json:"api_key"`
}

type voicesResponse struct {
	OK     bool             `json:"ok"`
	Voices []clientVoiceDTO `json:"voices"`
}

type configResponse struct {
	OK     bool      `json:"ok"`
	Config configDTO `json:"config"`
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

func (h *ClientHandler) check(ctx context.Context, req checkRequest) (any, error) {
	res, err := h.ledger.Check(ctx, ledger.CheckInput{Key: req.Key, DeviceID: req.Mac})
	if err != nil {
		return nil, err
	}
	return checkResponse{OK: true, Credit: res.Credit, Active: res.Active}, nil
}

func (h *ClientHandler) debit(ctx context.Context, req debitRequest) (any, error) {
	res, err := h.ledger.Debit(ctx, ledger.DebitInput{
		Key:      req.Key,
		DeviceID: req.Mac,
		Count:    req.Count,
		Model:    req.Model,
	})
	if err != nil {
		return nil, err
	}
	return debitResponse{OK: true, Debited: res.Debited, Credit: res.Credit}, nil
}

func (h *ClientHandler) refund(ctx context.Context, req refundRequest) (any, error) {
	res, err := h.ledger.Refund(ctx, ledger.RefundInput{
		Key:      req.Key,
		DeviceID: req.Mac,
		Count:    req.Count,
		Reason:   req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return refundResponse{OK: true, Refunded: res.Refunded, Credit: res.Credit}, nil
}

func (h *ClientHandler) nextAPIKey(ctx context.Context, _ noPayload) (any, error) {
	key, err := h.keys.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return apiKeyResponse{OK: true, APIKey: key.Key, Status: key.Status.String()}, nil
}

func (h *ClientHandler) releaseAPIKey(ctx context.Context, _ noPayload) (any, error) {
	if err := h.keys.Release(ctx); err != nil {
		return nil, err
	}
	return okResponse{OK: true}, nil
}

func (h *ClientHandler) deactivateAPIKey(ctx context.Context, req deactivateRequest) (any, error) {
	if err := h.keys.Deactivate(ctx, req.APIKey); err != nil {
		return nil, err
	}
	return apiKeyResponse{OK: true, Status: domain.APIKeyStatusInactive.String()}, nil
}

func (h *ClientHandler) getVoices(ctx context.Context, _ noPayload) (any, error) {
	voices, err := h.voices.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]clientVoiceDTO, 0, len(voices))
	for _, v := range voices {
		out = append(out, clientVoiceDTO{Name: v.Name, VoiceID: v.VoiceID})
	}
	return voicesResponse{OK: true, Voices: out}, nil
}

func (h *ClientHandler) getConfig(ctx context.Context, _ noPayload) (any, error) {
	cfg, err := h.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	dto := toConfigDTO(*cfg)
	dto.UpdatedAt = nil
	return configResponse{OK: true, Config: dto}, nil
}
