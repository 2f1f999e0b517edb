package ledger

// Handler is a core engine that can process a few specific messages.
// This could represent "mint a token", or "transfer ownership".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router.
type Registry interface {
	// Handle assigns given handler to handle processing of every message
	// of provided type.
	// Using a message with an invalid path or registering a handler for
	// the same message type twice is a programmer error and panics.
	Handle(Msg, Handler)
}
