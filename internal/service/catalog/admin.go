package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// List returns every voice, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Voice, error) {
	voices, err := s.voices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	return voices, nil
}

// Create adds a voice. A duplicate voice id fails with ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Voice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	v, err := s.voices.Create(ctx, domain.Voice{
		Name:    strings.TrimSpace(input.Name),
		VoiceID: strings.TrimSpace(input.VoiceID),
		Active:  active,
	})
	if err != nil {
		return nil, fmt.Errorf("create voice: %w", err)
	}
	s.refresh(ctx)

	s.log.InfoContext(ctx, "voice created",
		slog.String("id", v.ID.String()),
		slog.String("voice_id", v.VoiceID),
	)
	return v, nil
}

// Update edits a voice.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Voice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err := s.voices.Update(ctx, input.ID, trimPtr(input.Name), trimPtr(input.VoiceID), input.Active)
	if err != nil {
		return nil, fmt.Errorf("update voice: %w", err)
	}
	s.refresh(ctx)

	s.log.InfoContext(ctx, "voice updated", slog.String("id", v.ID.String()))
	return v, nil
}

// Delete removes a voice.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.voices.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete voice: %w", err)
	}
	s.refresh(ctx)

	s.log.InfoContext(ctx, "voice deleted", slog.String("id", id.String()))
	return nil
}
