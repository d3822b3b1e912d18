package domain

import (
	"time"

	"github.com/google/uuid"
)

// License is the billable entity: an opaque key bound to at most one device
// and carrying a consumable credit balance.
type License struct {
	ID        uuid.UUID
	Key       string
	DeviceID  *string
	Credit    int64
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBound reports whether the license has been bound to a device.
func (l *License) IsBound() bool {
	return l.DeviceID != nil && *l.DeviceID != ""
}

// BoundTo reports whether the license is bound to exactly deviceID.
func (l *License) BoundTo(deviceID string) bool {
	return l.IsBound() && *l.DeviceID == deviceID
}

// ClampCredit applies delta to credit with a zero floor and returns the
// resulting balance together with the change that was actually applied.
func ClampCredit(credit, delta int64) (newCredit, applied int64) {
	newCredit = credit + delta
	if newCredit < 0 {
		newCredit = 0
	}
	return newCredit, newCredit - credit
}

// LicenseFilter narrows the admin license listing.
type LicenseFilter struct {
	Query     string
	MinCredit *int64
	MaxCredit *int64
	Active    *bool
	From      *time.Time
	To        *time.Time // exclusive
}

// LicenseUpdate carries a partial admin edit. Nil fields are left untouched.
// DeviceID set to a pointer to "" unbinds the license.
type LicenseUpdate struct {
	Key      *string
	DeviceID *string
	Credit   *int64
	Active   *bool
}
