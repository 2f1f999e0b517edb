package currency

import (
	"fmt"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x"
)

const newTokenInfoCost = 100

// RegisterRoutes will instantiate and register all handlers in this package.
// The owner address is the only one allowed to register new currencies.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator, owner ledger.Address, accounts x.AccountOracle) {
	r.Handle(&CreateMsg{}, newCreateTokenInfoHandler(auth, owner, accounts))
}

func newCreateTokenInfoHandler(auth x.Authenticator, owner ledger.Address, accounts x.AccountOracle) ledger.Handler {
	// Registering a handler without a contract owner would leave currency
	// creation open to anyone. This is a wiring error and panics, like an
	// invalid route registration does.
	if err := owner.Validate(); err != nil {
		panic(fmt.Sprintf("invalid contract owner: %+v", err))
	}
	return &createTokenInfoHandler{
		auth:     auth,
		owner:    owner,
		accounts: accounts,
		bucket:   NewTokenInfoBucket(),
	}
}

type createTokenInfoHandler struct {
	auth     x.Authenticator
	bucket   *TokenInfoBucket
	owner    ledger.Address
	accounts x.AccountOracle
}

func (h *createTokenInfoHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return ledger.NewCheck(newTokenInfoCost, ""), nil
}

func (h *createTokenInfoHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	obj := NewTokenInfo(msg.Ticker, msg.Issuer)
	return &ledger.DeliverResult{}, h.bucket.Save(db, obj)
}

func (h *createTokenInfoHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Only the contract owner can register currencies. The issuer is
	// merely recorded.
	if !h.auth.HasAddress(ctx, h.owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "token only registered by %s", h.owner)
	}

	switch ok, err := h.accounts.Exists(ctx, db, msg.Issuer); {
	case err != nil:
		return nil, errors.Wrap(err, "account oracle")
	case !ok:
		return nil, errors.Wrapf(errors.ErrNotFound, "issuer account does not exist: %s", msg.Issuer)
	}

	// Token can be registered only once and must not be updated.
	switch obj, err := h.bucket.Get(db, msg.Ticker); {
	case err != nil:
		return nil, err
	case obj != nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "token with symbol already exists: %s", msg.Ticker)
	}

	return &msg, nil
}
