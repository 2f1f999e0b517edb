package cash

import (
	"encoding/json"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

//---- Set

// Set is the value persisted for every wallet, a normalized
// collection of coins.
type Set struct {
	Coins coin.Coins `json:"coins"`
}

func (s *Set) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *Set) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, s)
}

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	return &Set{
		Coins: s.Coins.Clone(),
	}
}

//--- Wallet (Set object, wallet + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key ledger.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// Value gets the value stored in the object
func (w Wallet) Value() ledger.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy(),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return w.value.Coins
}

// IsEmpty returns true when the wallet holds no coins at all.
func (w Wallet) IsEmpty() bool {
	return w.value.Coins.IsEmpty()
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	return w.value.Coins.Add(c)
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

func (b Bucket) Get(db ledger.KVStore, key ledger.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

func (b Bucket) Save(db ledger.KVStore, value *Wallet) error {
	return b.Bucket.Save(db, value)
}

func (b Bucket) GetOrCreate(db ledger.KVStore, key ledger.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}
