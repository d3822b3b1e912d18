package keypool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// List returns all credentials, newest first.
func (s *Service) List(ctx context.Context) ([]domain.APIKey, error) {
	keys, err := s.keys.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	return keys, nil
}

// Create adds a credential. A duplicate key fails with ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.APIKey, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.APIKeyStatusActive
	if input.Status != nil {
		status = *input.Status
	}

	key, err := s.keys.Create(ctx, domain.APIKey{
		Key:    strings.TrimSpace(input.APIKey),
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("create api key: %w", err)
	}

	s.log.InfoContext(ctx, "api key created",
		slog.String("id", key.ID.String()),
		slog.String("api_key", maskKey(key.Key)),
	)
	return key, nil
}

// Update edits the credential value and/or status.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.APIKey, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var apiKey *string
	if input.APIKey != nil {
		trimmed := strings.TrimSpace(*input.APIKey)
		apiKey = &trimmed
	}

	key, err := s.keys.Update(ctx, input.ID, apiKey, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update api key: %w", err)
	}

	s.log.InfoContext(ctx, "api key updated",
		slog.String("id", key.ID.String()),
		slog.String("status", key.Status.String()),
	)
	return key, nil
}

// Delete removes a credential.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.keys.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	s.log.InfoContext(ctx, "api key deleted", slog.String("id", id.String()))
	return nil
}
