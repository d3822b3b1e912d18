package ledger

// CheckResult is the license state reported to a client after a check.
type CheckResult struct {
	Credit int64
	Active bool
}

// DebitResult reports a successful debit.
type DebitResult struct {
	Debited int64
	Credit  int64
}

// RefundResult reports a successful refund.
type RefundResult struct {
	Refunded int64
	Credit   int64
}
