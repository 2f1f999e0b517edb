package x

import (
	"github.com/iov-one/ledger"
)

// AccountOracle answers whether an address belongs to a known account.
// Handlers that only want to move value between registered accounts can
// consult the oracle before touching any state.
type AccountOracle interface {
	Exists(ctx ledger.Context, db ledger.ReadOnlyKVStore, addr ledger.Address) (bool, error)
}

// AnyAccount is an AccountOracle that accepts every valid address.
// Use it when account registration is managed outside of this state.
type AnyAccount struct{}

var _ AccountOracle = AnyAccount{}

// Exists returns true for any valid address.
func (AnyAccount) Exists(ctx ledger.Context, db ledger.ReadOnlyKVStore, addr ledger.Address) (bool, error) {
	if err := addr.Validate(); err != nil {
		return false, err
	}
	return true, nil
}
