package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// Refund returns count credits to a license. The active flag is not checked.
// An empty DeviceID is accepted; a supplied one must not contradict the
// device the license is bound to.
func (s *Service) Refund(ctx context.Context, input RefundInput) (*RefundResult, error) {
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

		if deviceID != "" && current.IsBound() && !current.BoundTo(deviceID) {
			return domain.ErrDeviceMismatch
		}

		lic, err = s.licenses.SetCredit(txCtx, current.ID, current.Credit+input.Count)
		if err != nil {
			return fmt.Errorf("set credit: %w", err)
		}

		details := strings.TrimSpace(input.Reason)
		if details == "" {
			details = fmt.Sprintf("Refunded %d credits", input.Count)
		}

		if err := s.audit.Log(txCtx, domain.AuditEntry{
			LicenseID:  licenseIDPtr(current.ID),
			LicenseKey: current.Key,
			Action:     domain.AuditActionRefund,
			CharCount:  input.Count,
			Delta:      input.Count,
			Details:    details,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "credit refunded",
		slog.String("license_id", lic.ID.String()),
		slog.Int64("count", input.Count),
		slog.Int64("credit", lic.Credit),
	)

	return &RefundResult{Refunded: input.Count, Credit: lic.Credit}, nil
}
