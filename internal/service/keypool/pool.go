package keypool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Acquire returns the oldest active credential, or ErrNoActiveKeys.
func (s *Service) Acquire(ctx context.Context) (*domain.APIKey, error) {
	key, err := s.keys.FirstActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire api key: %w", err)
	}
	return key, nil
}

// Release is a no-op: Acquire does not reserve keys.
func (s *Service) Release(ctx context.Context) error {
	return nil
}

// Deactivate marks a credential inactive, typically after the provider
// rejected it. There is no automatic reactivation.
func (s *Service) Deactivate(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return domain.NewValidationError("api_key", "required")
	}

	if err := s.keys.SetStatusByKey(ctx, apiKey, domain.APIKeyStatusInactive); err != nil {
		return fmt.Errorf("deactivate api key: %w", err)
	}

	s.log.WarnContext(ctx, "api key deactivated", slog.String("api_key", maskKey(apiKey)))
	return nil
}
