package keypool

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

type apiKeyRepo interface {
	FirstActive(ctx context.Context) (*domain.APIKey, error)
	SetStatusByKey(ctx context.Context, apiKey string, status domain.APIKeyStatus) error
	List(ctx context.Context) ([]domain.APIKey, error)
	Create(ctx context.Context, k domain.APIKey) (*domain.APIKey, error)
	Update(ctx context.Context, id uuid.UUID, apiKey *string, status *domain.APIKeyStatus) (*domain.APIKey, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service hands out upstream provider credentials. Acquire is a selection,
// not a lease: concurrent callers may receive the same key.
type Service struct {
	keys apiKeyRepo
	log  *slog.Logger
}

// NewService creates a new key pool service.
func NewService(log *slog.Logger, keys apiKeyRepo) *Service {
	return &Service{
		keys: keys,
		log:  log.With("service", "keypool"),
	}
}

// maskKey hides all but the last four characters of a credential.
func maskKey(k string) string {
	if len(k) <= 4 {
		return "****"
	}
	return "****" + k[len(k)-4:]
}
