package license

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type licenseRepo interface {
	List(ctx context.Context, filter domain.LicenseFilter) ([]domain.License, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.License, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.License, error)
	Create(ctx context.Context, lic *domain.License) (*domain.License, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.LicenseUpdate) (*domain.License, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.License, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service provides admin management of licenses.
type Service struct {
	licenses licenseRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new license admin service.
func NewService(
	log *slog.Logger,
	licenses licenseRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		licenses: licenses,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "license"),
	}
}
