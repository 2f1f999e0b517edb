package currency

import (
	"encoding/json"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

// TokenInfo is the registry entry for a single currency. It tracks the
// outstanding supply and the account allowed to issue against it.
type TokenInfo struct {
	// Supply is the total outstanding amount, denominated in the ticker
	// the entry is stored under. Precision is fixed at zero, so the
	// fractional part must always be zero.
	Supply coin.Coin `json:"supply"`
	// Issuer is the only account authorized to mint against this entry.
	Issuer ledger.Address `json:"issuer"`
}

var _ orm.CloneableData = (*TokenInfo)(nil)

// NewTokenInfo returns a new registry entry with zero supply, as represented
// by an orm object.
func NewTokenInfo(ticker string, issuer ledger.Address) orm.Object {
	return orm.NewSimpleObj([]byte(ticker), &TokenInfo{
		Supply: coin.NewCoin(0, 0, ticker),
		Issuer: issuer,
	})
}

func (t *TokenInfo) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

func (t *TokenInfo) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, t)
}

func (t *TokenInfo) Validate() error {
	if err := t.Supply.Validate(); err != nil {
		return err
	}
	if !t.Supply.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative supply")
	}
	if !t.Supply.IsWhole() {
		return errors.Wrap(errors.ErrAmount, "supply must be a whole number")
	}
	return t.Issuer.Validate()
}

func (t *TokenInfo) Copy() orm.CloneableData {
	return &TokenInfo{
		Supply: t.Supply,
		Issuer: t.Issuer.Clone(),
	}
}

// TokenInfoBucket stores TokenInfo instances, using ticker name (currency
// symbol) as the key.
type TokenInfoBucket struct {
	orm.Bucket
}

func NewTokenInfoBucket() *TokenInfoBucket {
	return &TokenInfoBucket{
		Bucket: orm.NewBucket("tokeninfo", orm.NewSimpleObj(nil, &TokenInfo{})),
	}
}

func (b *TokenInfoBucket) Get(db ledger.KVStore, ticker string) (orm.Object, error) {
	return b.Bucket.Get(db, []byte(ticker))
}

func (b *TokenInfoBucket) Save(db ledger.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*TokenInfo); !ok {
		return errors.WithType(errors.ErrModel, obj.Value())
	}
	if n := string(obj.Key()); !coin.IsCC(n) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", n)
	}
	return b.Bucket.Save(db, obj)
}

// AddSupply increases the outstanding supply of the given ticker. Only the
// mint engine is expected to call this, in the same atomic unit as the token
// table mutation.
func (b *TokenInfoBucket) AddSupply(db ledger.KVStore, ticker string, amount coin.Coin) error {
	return b.updateSupply(db, ticker, amount)
}

// SubtractSupply decreases the outstanding supply of the given ticker.
// Supply may never go negative.
func (b *TokenInfoBucket) SubtractSupply(db ledger.KVStore, ticker string, amount coin.Coin) error {
	return b.updateSupply(db, ticker, amount.Negative())
}

func (b *TokenInfoBucket) updateSupply(db ledger.KVStore, ticker string, amount coin.Coin) error {
	obj, err := b.Get(db, ticker)
	if err != nil {
		return err
	}
	if obj == nil {
		return errors.Wrapf(errors.ErrNotFound, "no token with symbol: %s", ticker)
	}
	info := obj.Value().(*TokenInfo)
	supply, err := info.Supply.Add(amount)
	if err != nil {
		return err
	}
	if !supply.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "supply of %s cannot go negative", ticker)
	}
	info.Supply = supply
	return b.Save(db, obj)
}
