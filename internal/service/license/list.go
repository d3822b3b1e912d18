package license

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// List returns licenses matching the filters, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.License, error) {
	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	licenses, err := s.licenses.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	return licenses, nil
}

// Get returns a single license.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	lic, err := s.licenses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get license: %w", err)
	}
	return lic, nil
}
