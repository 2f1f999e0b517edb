package nft

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
)

// Event describes a completed token mutation, delivered to the affected
// accounts after the state change.
type Event struct {
	// Action is the message path that caused this event.
	Action string
	// TokenID references the mutated token. For a batched mint this is
	// the id of the first token in the batch.
	TokenID []byte
	// Quantity is the amount moved, minted or burned.
	Quantity coin.Coin
	// Peer is the counterparty of a transfer, if any.
	Peer ledger.Address
}

// Notifier is the delivery hook for downstream reactions to token
// mutations. The engine does not depend on what the notified party does.
type Notifier interface {
	Notify(ctx ledger.Context, addr ledger.Address, ev Event)
}

// NopNotifier drops all notifications.
type NopNotifier struct{}

var _ Notifier = NopNotifier{}

func (NopNotifier) Notify(ledger.Context, ledger.Address, Event) {}
