package domain

// AuditAction identifies the kind of credit transition recorded in the log.
type AuditAction string

const (
	AuditActionDebit        AuditAction = "debit"
	AuditActionRefund       AuditAction = "refund"
	AuditActionAdjustCredit AuditAction = "adjust_credit"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionDebit, AuditActionRefund, AuditActionAdjustCredit:
		return true
	}
	return false
}

// APIKeyStatus is the lifecycle state of an upstream provider credential.
type APIKeyStatus string

const (
	APIKeyStatusActive   APIKeyStatus = "active"
	APIKeyStatusInactive APIKeyStatus = "inactive"
)

func (s APIKeyStatus) String() string { return string(s) }

func (s APIKeyStatus) IsValid() bool {
	switch s {
	case APIKeyStatusActive, APIKeyStatusInactive:
		return true
	}
	return false
}
