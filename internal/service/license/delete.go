package license

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Delete removes a license. Its audit entries remain with the key snapshot.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.licenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete license: %w", err)
	}

	s.log.InfoContext(ctx, "license deleted", slog.String("license_id", id.String()))
	return nil
}

// Toggle flips the active flag under a row lock.
func (s *Service) Toggle(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var lic *domain.License
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.licenses.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get license: %w", err)
		}
		lic, err = s.licenses.SetActive(txCtx, id, !current.Active)
		if err != nil {
			return fmt.Errorf("set active: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "license toggled",
		slog.String("license_id", id.String()),
		slog.Bool("active", lic.Active),
	)
	return lic, nil
}
