package license

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Update applies a partial admin edit. A credit change is clamped at zero and
// recorded as an adjust_credit audit entry in the same transaction.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.License, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	upd := domain.LicenseUpdate{
		Key:      trimOrNil(input.Key),
		DeviceID: trimOrNil(input.DeviceID),
		Active:   input.Active,
	}

	var (
		lic     *domain.License
		applied int64
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.licenses.GetByIDForUpdate(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get license: %w", err)
		}

		if input.Credit != nil {
			var credit int64
			credit, applied = domain.ClampCredit(current.Credit, *input.Credit-current.Credit)
			upd.Credit = &credit
		}

		lic, err = s.licenses.Update(txCtx, current.ID, upd)
		if err != nil {
			return fmt.Errorf("update license: %w", err)
		}

		if applied == 0 {
			return nil
		}
		if err := s.audit.Log(txCtx, domain.AuditEntry{
			LicenseID:  &lic.ID,
			LicenseKey: lic.Key,
			Action:     domain.AuditActionAdjustCredit,
			CharCount:  max(applied, -applied),
			Delta:      applied,
			Details:    domain.AdjustCreditDetails(applied, applied, input.Note),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "license updated",
		slog.String("license_id", lic.ID.String()),
		slog.Int64("credit_delta", applied),
	)

	return lic, nil
}
