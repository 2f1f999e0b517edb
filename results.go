package ledger

// DeliverResult captures any non-error result of executing a transaction,
// to make sure people use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// GasUsed is the units of work performed by this transaction.
	GasUsed int64
}

// CheckResult captures any non-error result of the validity check,
// to make sure people use error for error cases.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform.
	GasAllocated int64
}

// NewCheck sets the gas allocated and the log message, which are
// the most common information needed to be set by a Handler.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}
