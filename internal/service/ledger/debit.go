package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Debit consumes count credits from a license bound to the calling device.
// The balance check, the decrement and the audit entry commit together.
func (s *Service) Debit(ctx context.Context, input DebitInput) (*DebitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.Key)
	deviceID := strings.TrimSpace(input.DeviceID)

	var lic *domain.License

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.licenses.GetByKeyForUpdate(txCtx, key)
		if err != nil {
			return fmt.Errorf("get license: %w", err)
		}

		if !current.Active {
			return domain.ErrInactive
		}
		// An unbound license has never passed a check and cannot be debited.
		if !current.BoundTo(deviceID) {
			return domain.ErrDeviceMismatch
		}
		if current.Credit < input.Count {
			return &domain.InsufficientCreditError{Credit: current.Credit, Requested: input.Count}
		}

		lic, err = s.licenses.SetCredit(txCtx, current.ID, current.Credit-input.Count)
		if err != nil {
			return fmt.Errorf("set credit: %w", err)
		}

		details := strings.TrimSpace(input.Model)
		if details == "" {
			details = fmt.Sprintf("Debited %d credits", input.Count)
		}

		if err := s.audit.Log(txCtx, domain.AuditEntry{
			LicenseID:  licenseIDPtr(current.ID),
			LicenseKey: current.Key,
			Action:     domain.AuditActionDebit,
			CharCount:  input.Count,
			Delta:      -input.Count,
			Details:    details,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "credit debited",
		slog.String("license_id", lic.ID.String()),
		slog.Int64("count", input.Count),
		slog.Int64("credit", lic.Credit),
	)

	return &DebitResult{Debited: input.Count, Credit: lic.Credit}, nil
}
