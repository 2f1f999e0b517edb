// Package app glues the pieces together: a router dispatches
// incoming transactions to the extension that handles the
// message carried by them.
package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

var isPath = regexp.MustCompile(`^[a-z]+(/[a-z_]+)?$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the registered handler.
type Router struct {
	handlers map[string]ledger.Handler
}

var _ ledger.Registry = (*Router)(nil)
var _ ledger.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]ledger.Handler),
	}
}

// Handle implements Registry interface.
func (r *Router) Handle(m ledger.Msg, h ledger.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %T: %s", m, path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.handlers[path] = h
}

// Handler returns the registered Handler for this path.
// If no path is found, returns a noSuchPathHandler.
func (r *Router) Handler(path string) ledger.Handler {
	h, ok := r.handlers[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	res, err := h.Check(ctx, store, tx)
	logDispatch(ctx, "check", tx, err)
	return res, err
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	res, err := h.Deliver(ctx, store, tx)
	logDispatch(ctx, "deliver", tx, err)
	return res, err
}

// logDispatch records the outcome of a dispatch on the request logger.
func logDispatch(ctx ledger.Context, phase string, tx ledger.Tx, err error) {
	ctx = ledger.WithLogInfo(ctx, "path", ledger.GetPath(tx))
	logger := ledger.GetLogger(ctx)
	if err != nil {
		logger.Error(phase, "err", err)
	} else {
		logger.Debug(phase)
	}
}

type noSuchPathHandler struct {
	path string
}

var _ ledger.Handler = noSuchPathHandler{}

// Check always returns a path not found error
func (h noSuchPathHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}

// Deliver always returns a path not found error
func (h noSuchPathHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}
