// Package cash keeps the per-account balance table. There are no message
// handlers here on purpose: balances change only in lock-step with the token
// table, through the controller operations below.
package cash

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
)

// Controller performs all balance mutations against the wallet bucket.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller using the given bucket to store the
// wallet state.
func NewController(bucket Bucket) Controller {
	return Controller{bucket: bucket}
}

// Balance returns the amount of coins the account holds. A missing wallet
// row means a zero balance, not an error.
func (c Controller) Balance(db ledger.KVStore, src ledger.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(db, src)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return coin.Coins{}, nil
	}
	return wallet.Coins(), nil
}

// IssueCoins credits the given amount to the destination address, creating
// the wallet row on first use.
func (c Controller) IssueCoins(db ledger.KVStore, dest ledger.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive credit: %s", amount)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// SubtractCoins debits the given amount from the source address. A coin
// reduced to zero is removed from the set and a wallet row with no coins
// left is deleted, so zero balances are never stored.
func (c Controller) SubtractCoins(db ledger.KVStore, src ledger.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive debit: %s", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrNotFound, "no balance object found: %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "overdrawn balance: %s", amount)
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}

	if sender.IsEmpty() {
		return c.bucket.Delete(db, src)
	}
	return c.bucket.Save(db, sender)
}

// MoveCoins debits src and credits dest by the same amount within the same
// atomic unit.
func (c Controller) MoveCoins(db ledger.KVStore, src, dest ledger.Address, amount coin.Coin) error {
	if err := c.SubtractCoins(db, src, amount); err != nil {
		return err
	}
	return c.IssueCoins(db, dest, amount)
}
