package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Check validates a license for a device. The first successful check binds
// the license to the device; later checks from the same device only refresh
// the updated timestamp.
func (s *Service) Check(ctx context.Context, input CheckInput) (*CheckResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.Key)
	deviceID := strings.TrimSpace(input.DeviceID)

	var (
		lic   *domain.License
		bound bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.licenses.GetByKeyForUpdate(txCtx, key)
		if err != nil {
			return fmt.Errorf("get license: %w", err)
		}

		if !current.Active {
			return domain.ErrInactive
		}

		switch {
		case !current.IsBound():
			lic, err = s.licenses.BindDevice(txCtx, current.ID, deviceID)
			if err != nil {
				return fmt.Errorf("bind device: %w", err)
			}
			bound = true
		case current.BoundTo(deviceID):
			lic, err = s.licenses.Touch(txCtx, current.ID)
			if err != nil {
				return fmt.Errorf("touch license: %w", err)
			}
		default:
			return domain.ErrDeviceMismatch
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if bound {
		s.log.InfoContext(ctx, "license bound",
			slog.String("license_id", lic.ID.String()),
			slog.String("device_id", deviceID),
		)
	}

	return &CheckResult{Credit: lic.Credit, Active: lic.Active}, nil
}
