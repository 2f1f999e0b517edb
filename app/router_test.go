package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
)

type countingHandler struct {
	called int
}

var _ ledger.Handler = (*countingHandler)(nil)

func (h *countingHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	h.called++
	return &ledger.CheckResult{}, nil
}

func (h *countingHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	h.called++
	return &ledger.DeliverResult{}, nil
}

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()
	var h countingHandler
	r.Handle(&ledgertest.Msg{RoutePath: "test/good"}, &h)

	tx := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(context.Background(), nil, tx)
	require.NoError(t, err)
	_, err = r.Deliver(context.Background(), nil, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, h.called)
}

func TestRouterNoRoute(t *testing.T) {
	r := NewRouter()

	tx := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "test/missing"}}
	_, err := r.Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterInvalidPath(t *testing.T) {
	r := NewRouter()
	assert.Panics(t, func() {
		r.Handle(&ledgertest.Msg{RoutePath: "no spaces allowed"}, &countingHandler{})
	})
}

func TestRouterDuplicateRoute(t *testing.T) {
	r := NewRouter()
	r.Handle(&ledgertest.Msg{RoutePath: "test/dup"}, &countingHandler{})
	assert.Panics(t, func() {
		r.Handle(&ledgertest.Msg{RoutePath: "test/dup"}, &countingHandler{})
	})
}
