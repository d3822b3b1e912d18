package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// AdjustCredit applies an admin credit change. The balance never drops below
// zero; the audit entry carries the change that was actually applied.
func (s *Service) AdjustCredit(ctx context.Context, input AdjustCreditInput) (*domain.License, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		lic     *domain.License
		applied int64
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.licenses.GetByIDForUpdate(txCtx, input.LicenseID)
		if err != nil {
			return fmt.Errorf("get license: %w", err)
		}

		var newCredit int64
		newCredit, applied = domain.ClampCredit(current.Credit, input.Delta)

		lic, err = s.licenses.SetCredit(txCtx, current.ID, newCredit)
		if err != nil {
			return fmt.Errorf("set credit: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditEntry{
			LicenseID:  licenseIDPtr(current.ID),
			LicenseKey: current.Key,
			Action:     domain.AuditActionAdjustCredit,
			CharCount:  abs(applied),
			Delta:      applied,
			Details:    domain.AdjustCreditDetails(input.Delta, applied, input.Note),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "credit adjusted",
		slog.String("license_id", lic.ID.String()),
		slog.Int64("requested", input.Delta),
		slog.Int64("applied", applied),
		slog.Int64("credit", lic.Credit),
	)

	return lic, nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
