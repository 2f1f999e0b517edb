package ledgertest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/ledger"
)

var conditionCounter uint64

// NewCondition returns a unique condition for tests. Each call returns a
// different value, deterministic within a single run.
func NewCondition() ledger.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, atomic.AddUint64(&conditionCounter, 1))
	return ledger.NewCondition("test", "mock", data)
}

// NewAddress returns a unique address for tests.
func NewAddress() ledger.Address {
	return NewCondition().Address()
}
