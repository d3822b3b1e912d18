package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/amulet-backend/internal/domain"
	"github.com/heartmarshall/amulet-backend/internal/service/appconfig"
	"github.com/heartmarshall/amulet-backend/internal/service/auditlog"
	"github.com/heartmarshall/amulet-backend/internal/service/backup"
	"github.com/heartmarshall/amulet-backend/internal/service/catalog"
	"github.com/heartmarshall/amulet-backend/internal/service/keypool"
	"github.com/heartmarshall/amulet-backend/internal/service/ledger"
	"github.com/heartmarshall/amulet-backend/internal/service/license"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type licenseAdmin interface {
	List(ctx context.Context, input license.ListInput) ([]domain.License, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.License, error)
	Create(ctx context.Context, input license.CreateInput) (*domain.License, error)
	Update(ctx context.Context, input license.UpdateInput) (*domain.License, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Toggle(ctx context.Context, id uuid.UUID) (*domain.License, error)
}

type creditAdjuster interface {
	AdjustCredit(ctx context.Context, input ledger.AdjustCreditInput) (*domain.License, error)
}

type apiKeyAdmin interface {
	List(ctx context.Context) ([]domain.APIKey, error)
	Create(ctx context.Context, input keypool.CreateInput) (*domain.APIKey, error)
	Update(ctx context.Context, input keypool.UpdateInput) (*domain.APIKey, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type voiceAdmin interface {
	List(ctx context.Context) ([]domain.Voice, error)
	Create(ctx context.Context, input catalog.CreateInput) (*domain.Voice, error)
	Update(ctx context.Context, input catalog.UpdateInput) (*domain.Voice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, r io.Reader) (*catalog.ImportResult, error)
}

type auditQuerier interface {
	Query(ctx context.Context, input auditlog.QueryInput) ([]domain.AuditEntry, error)
}

type configAdmin interface {
	Get(ctx context.Context) (*domain.AppConfig, error)
	Update(ctx context.Context, input appconfig.UpdateInput) (*domain.AppConfig, error)
}

type backupExporter interface {
	Full(ctx context.Context) (*backup.Snapshot, error)
	Licenses(ctx context.Context) ([]domain.License, error)
	Now() time.Time
}

// AdminServices groups the services behind the admin API.
type AdminServices struct {
	Licenses licenseAdmin
	Credit   creditAdjuster
	APIKeys  apiKeyAdmin
	Voices   voiceAdmin
	Audit    auditQuerier
	Config   configAdmin
	Backup   backupExporter
}

// AdminHandler serves the /admin_api endpoints. Authentication is applied
// by middleware.BasicAuth in the router.
type AdminHandler struct {
	licenses       licenseAdmin
	credit         creditAdjuster
	apiKeys        apiKeyAdmin
	voices         voiceAdmin
	audit          auditQuerier
	config         configAdmin
	backup         backupExporter
	maxUploadBytes int64
	log            *slog.Logger
}

// NewAdminHandler creates an AdminHandler. maxUploadBytes bounds voice
// list uploads.
func NewAdminHandler(svc AdminServices, maxUploadBytes int64, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		licenses:       svc.Licenses,
		credit:         svc.Credit,
		apiKeys:        svc.APIKeys,
		voices:         svc.Voices,
		audit:          svc.Audit,
		config:         svc.Config,
		backup:         svc.Backup,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "admin"),
	}
}

type createdResponse struct {
	OK bool      `json:"ok"`
	ID uuid.UUID `json:"id"`
}

func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

// bad reports an undecodable body.
func bad(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
}
