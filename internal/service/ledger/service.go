package ledger

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
	GetByKeyForUpdate(ctx context.Context, key string) (*domain.License, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.License, error)
	BindDevice(ctx context.Context, id uuid.UUID, deviceID string) (*domain.License, error)
	Touch(ctx context.Context, id uuid.UUID) (*domain.License, error)
	SetCredit(ctx context.Context, id uuid.UUID, credit int64) (*domain.License, error)
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

// Service owns every credit transition of a license. Each operation locks the
// license row and, when credit changes, writes the audit entry in the same
// transaction.
type Service struct {
	licenses licenseRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new ledger service.
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
		log:      log.With("service", "ledger"),
	}
}

func licenseIDPtr(id uuid.UUID) *uuid.UUID { return &id }
