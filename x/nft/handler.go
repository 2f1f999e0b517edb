package nft

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x"
	"github.com/iov-one/ledger/x/cash"
	"github.com/iov-one/ledger/x/currency"
)

const (
	mintTokenCost     = 100
	transferTokenCost = 50
	burnTokenCost     = 50
	reassignPayerCost = 20
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator, accounts x.AccountOracle, notifier Notifier) {
	ops := tokenOps{
		auth:     auth,
		accounts: accounts,
		notifier: notifier,
		tokens:   NewTokenBucket(),
		tickers:  currency.NewTokenInfoBucket(),
		balances: cash.NewController(cash.NewBucket()),
	}
	r.Handle(&IssueMsg{}, &issueHandler{ops})
	r.Handle(&TransferMsg{}, &transferHandler{ops})
	r.Handle(&TransferByAmountMsg{}, &transferByAmountHandler{ops})
	r.Handle(&BurnMsg{}, &burnHandler{ops})
	r.Handle(&ReassignPayerMsg{}, &reassignPayerHandler{ops})
}

// tokenOps bundles the collaborators every token mutation needs: the three
// tables and the injected capabilities.
type tokenOps struct {
	auth     x.Authenticator
	accounts x.AccountOracle
	notifier Notifier
	tokens   TokenBucket
	tickers  *currency.TokenInfoBucket
	balances cash.Controller
}

// moveToken reassigns ownership of one token and adjusts both balances in
// the same atomic unit. The storage cost of the row moves to the sender.
// Both parties are notified after the state change.
func (ops tokenOps) moveToken(ctx ledger.Context, db ledger.KVStore, from, to ledger.Address, id []byte, token *Token) error {
	token.Owner = to
	token.Payer = from
	if err := ops.tokens.Save(db, id, token); err != nil {
		return err
	}
	if err := ops.balances.MoveCoins(db, from, to, token.Value); err != nil {
		return err
	}

	ops.notifier.Notify(ctx, from, Event{Action: "nft/transfer", TokenID: id, Quantity: token.Value, Peer: to})
	ops.notifier.Notify(ctx, to, Event{Action: "nft/transfer", TokenID: id, Quantity: token.Value, Peer: from})
	return nil
}

// ------------------- issue -------------------

type issueHandler struct {
	tokenOps
}

var _ ledger.Handler = (*issueHandler)(nil)

func (h *issueHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	msg, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return ledger.NewCheck(mintTokenCost*msg.Quantity.Whole, ""), nil
}

func (h *issueHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, info, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	ticker := msg.Quantity.Ticker
	if err := h.tickers.AddSupply(db, ticker, msg.Quantity); err != nil {
		return nil, err
	}

	// Mint one token per uri. The batch is all-or-nothing: the host
	// discards every write above on any error below.
	var firstID []byte
	for _, uri := range msg.URIs {
		id, err := h.tokens.NextID(db)
		if err != nil {
			return nil, err
		}
		if firstID == nil {
			firstID = id
		}
		token := &Token{
			Owner: msg.To,
			Value: coin.NewCoin(1, 0, ticker),
			URI:   uri,
			Name:  msg.Name,
			Payer: info.Issuer,
		}
		if err := h.tokens.Save(db, id, token); err != nil {
			return nil, err
		}
	}

	if err := h.balances.IssueCoins(db, msg.To, msg.Quantity); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, msg.To, Event{Action: "nft/issue", TokenID: firstID, Quantity: msg.Quantity})
	return &ledger.DeliverResult{Data: firstID, Log: msg.Memo}, nil
}

func (h *issueHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*IssueMsg, *currency.TokenInfo, error) {
	var msg IssueMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	switch ok, err := h.accounts.Exists(ctx, db, msg.To); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "account oracle")
	case !ok:
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "to account does not exist: %s", msg.To)
	}

	obj, err := h.tickers.Get(db, msg.Quantity.Ticker)
	if err != nil {
		return nil, nil, err
	}
	if obj == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "token with symbol does not exist. create token before issue")
	}
	info := obj.Value().(*currency.TokenInfo)

	if !h.auth.HasAddress(ctx, info.Issuer) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "transaction not signed by issuer %s", info.Issuer)
	}

	return &msg, info, nil
}

// ------------------- transfer by id -------------------

type transferHandler struct {
	tokenOps
}

var _ ledger.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return ledger.NewCheck(transferTokenCost, ""), nil
}

func (h *transferHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.moveToken(ctx, db, msg.From, msg.To, msg.ID, token); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{Data: msg.ID, Log: msg.Memo}, nil
}

func (h *transferHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*TransferMsg, *Token, error) {
	var msg TransferMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.From) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "transaction not signed by %s", msg.From)
	}

	switch ok, err := h.accounts.Exists(ctx, db, msg.To); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "account oracle")
	case !ok:
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "to account does not exist: %s", msg.To)
	}

	token, err := h.tokens.GetToken(db, msg.ID)
	if err != nil {
		return nil, nil, err
	}
	if token == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "token with specified ID does not exist")
	}
	if !token.Owner.Equals(msg.From) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "sender does not own token with specified ID")
	}

	return &msg, token, nil
}

// ------------------- transfer by amount -------------------

type transferByAmountHandler struct {
	tokenOps
}

var _ ledger.Handler = (*transferByAmountHandler)(nil)

func (h *transferByAmountHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return ledger.NewCheck(transferTokenCost, ""), nil
}

func (h *transferByAmountHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, id, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.moveToken(ctx, db, msg.From, msg.To, id, token); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{Data: id, Log: msg.Memo}, nil
}

func (h *transferByAmountHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*TransferByAmountMsg, []byte, *Token, error) {
	var msg TransferByAmountMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.From) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "transaction not signed by %s", msg.From)
	}

	switch ok, err := h.accounts.Exists(ctx, db, msg.To); {
	case err != nil:
		return nil, nil, nil, errors.Wrap(err, "account oracle")
	case !ok:
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "to account does not exist: %s", msg.To)
	}

	id, token, err := h.tokens.FirstOwnedByTicker(db, msg.From, msg.Quantity.Ticker)
	if err != nil {
		return nil, nil, nil, err
	}
	if token == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrNotFound, "token is not found or is not owned by account")
	}

	return &msg, id, token, nil
}

// ------------------- burn -------------------

type burnHandler struct {
	tokenOps
}

var _ ledger.Handler = (*burnHandler)(nil)

func (h *burnHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return ledger.NewCheck(burnTokenCost, ""), nil
}

func (h *burnHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	value := token.Value
	if err := h.tokens.Bucket.Delete(db, msg.ID); err != nil {
		return nil, err
	}
	if err := h.balances.SubtractCoins(db, msg.Owner, value); err != nil {
		return nil, err
	}
	if err := h.tickers.SubtractSupply(db, value.Ticker, value); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, msg.Owner, Event{Action: "nft/burn", TokenID: msg.ID, Quantity: value})
	return &ledger.DeliverResult{Data: msg.ID}, nil
}

func (h *burnHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*BurnMsg, *Token, error) {
	var msg BurnMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "transaction not signed by %s", msg.Owner)
	}

	token, err := h.tokens.GetToken(db, msg.ID)
	if err != nil {
		return nil, nil, err
	}
	if token == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "token with id does not exist")
	}
	if !token.Owner.Equals(msg.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "token not owned by account")
	}

	return &msg, token, nil
}

// ------------------- reassign payer -------------------

type reassignPayerHandler struct {
	tokenOps
}

var _ ledger.Handler = (*reassignPayerHandler)(nil)

func (h *reassignPayerHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return ledger.NewCheck(reassignPayerCost, ""), nil
}

func (h *reassignPayerHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Content of the token does not change, only the storage cost
	// attribution. The balance round trip is kept on purpose so that
	// balance observers see the same mutations the canonical flow makes.
	token.Payer = msg.Payer
	if err := h.tokens.Save(db, msg.ID, token); err != nil {
		return nil, err
	}
	if err := h.balances.SubtractCoins(db, msg.Payer, token.Value); err != nil {
		return nil, err
	}
	if err := h.balances.IssueCoins(db, msg.Payer, token.Value); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, msg.Payer, Event{Action: "nft/reassign_payer", TokenID: msg.ID, Quantity: token.Value})
	return &ledger.DeliverResult{Data: msg.ID}, nil
}

func (h *reassignPayerHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ReassignPayerMsg, *Token, error) {
	var msg ReassignPayerMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.Payer) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "transaction not signed by %s", msg.Payer)
	}

	token, err := h.tokens.GetToken(db, msg.ID)
	if err != nil {
		return nil, nil, err
	}
	if token == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "token with specified ID does not exist")
	}
	if !token.Owner.Equals(msg.Payer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "payer does not own token with specified ID")
	}

	return &msg, token, nil
}
