package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable record of a single credit-affecting transition.
// LicenseID is nil once the owning license has been deleted; LicenseKey keeps
// the key as it was when the entry was written.
type AuditEntry struct {
	ID         uuid.UUID
	LicenseID  *uuid.UUID
	LicenseKey string
	Action     AuditAction
	CharCount  int64
	Delta      int64
	Details    string
	CreatedAt  time.Time
}

// AuditFilter narrows an audit log query. From is inclusive, To exclusive.
type AuditFilter struct {
	Query     string
	LicenseID *uuid.UUID
	Action    *AuditAction
	MinChars  *int64
	MaxChars  *int64
	From      *time.Time
	To        *time.Time
	Limit     int
}

// AdjustCreditDetails formats the details text of an adjust_credit entry.
// applied is reported only when clamping changed the requested delta.
func AdjustCreditDetails(requested, applied int64, note string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "delta=%d", requested)
	if applied != requested {
		fmt.Fprintf(&b, " applied=%d", applied)
	}
	if note = strings.TrimSpace(note); note != "" {
		b.WriteString("; ")
		b.WriteString(note)
	}
	return b.String()
}
