package license

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Create issues a new license. A duplicate key fails with ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.License, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	lic, err := s.licenses.Create(ctx, &domain.License{
		Key:      strings.TrimSpace(input.Key),
		DeviceID: trimOrNil(input.DeviceID),
		Credit:   input.Credit,
		Active:   active,
	})
	if err != nil {
		return nil, fmt.Errorf("create license: %w", err)
	}

	s.log.InfoContext(ctx, "license created",
		slog.String("license_id", lic.ID.String()),
		slog.Int64("credit", lic.Credit),
	)

	return lic, nil
}
