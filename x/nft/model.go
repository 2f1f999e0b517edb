package nft

import (
	"encoding/json"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

// BucketName is where we store the tokens
const BucketName = "tokens"

const (
	// MaxNameLength is the longest allowed descriptive token name.
	MaxNameLength = 32
	// MaxMemoLength is the longest allowed transaction memo.
	MaxMemoLength = 256
)

// Token is one minted unit. Every token has its own identity, a single
// owner and a value of exactly one symbol unit.
type Token struct {
	// Owner is the current holder of the token.
	Owner ledger.Address `json:"owner"`
	// Value is always one whole unit of the token's currency.
	Value coin.Coin `json:"value"`
	// URI is an opaque reference to the underlying asset.
	URI string `json:"uri"`
	// Name is the descriptive label given at mint time.
	Name string `json:"name"`
	// Payer is the account attributed with the storage cost of this row.
	// Bookkeeping metadata, not an ownership concept.
	Payer ledger.Address `json:"payer"`
}

var _ orm.CloneableData = (*Token)(nil)

func (t *Token) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

func (t *Token) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, t)
}

func (t *Token) Validate() error {
	if err := t.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := t.Value.Validate(); err != nil {
		return err
	}
	if !t.Value.IsPositive() || !t.Value.IsWhole() {
		return errors.Wrapf(errors.ErrAmount, "token value must be a positive whole amount: %s", t.Value)
	}
	if t.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(t.Name) > MaxNameLength {
		return errors.Wrap(errors.ErrInput, "name has more than 32 bytes")
	}
	if t.Payer != nil {
		if err := t.Payer.Validate(); err != nil {
			return errors.Wrap(err, "payer")
		}
	}
	return nil
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Owner: t.Owner.Clone(),
		Value: t.Value,
		URI:   t.URI,
		Name:  t.Name,
		Payer: t.Payer.Clone(),
	}
}

// AsToken extracts the Token value from an orm object.
func AsToken(obj orm.Object) *Token {
	if obj == nil {
		return nil
	}
	return obj.Value().(*Token)
}

// TokenBucket stores all minted tokens under an 8 byte big endian id, with
// secondary views by owner and by currency symbol.
type TokenBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewTokenBucket initializes a TokenBucket with default name
func NewTokenBucket() TokenBucket {
	bucket := orm.NewBucket(BucketName,
		orm.NewSimpleObj(nil, &Token{})).
		WithIndex("owner", ownerIndexer).
		WithIndex("ticker", tickerIndexer)
	return TokenBucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(orm.SeqID),
	}
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot index nil object")
	}
	return AsToken(obj).Owner, nil
}

func tickerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot index nil object")
	}
	return []byte(AsToken(obj).Value.Ticker), nil
}

// NextID returns the next unused token id. The very first token of the
// contract gets id zero.
func (b TokenBucket) NextID(db ledger.KVStore) ([]byte, error) {
	n, err := b.idSeq.NextInt(db)
	if err != nil {
		return nil, err
	}
	return orm.EncodeSequence(n - 1), nil
}

// GetToken loads the token with given id, or nil when absent.
func (b TokenBucket) GetToken(db ledger.KVStore, id []byte) (*Token, error) {
	obj, err := b.Bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	return AsToken(obj), nil
}

// Save persists a token under its id, keeping the secondary views in sync.
func (b TokenBucket) Save(db ledger.KVStore, id []byte, token *Token) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, token))
}

// ByOwner returns all tokens held by the given address, ordered by id.
func (b TokenBucket) ByOwner(db ledger.KVStore, owner ledger.Address) ([]orm.Object, error) {
	return b.GetIndexed(db, "owner", owner)
}

// ByTicker returns all tokens of the given currency, ordered by id.
func (b TokenBucket) ByTicker(db ledger.KVStore, ticker string) ([]orm.Object, error) {
	return b.GetIndexed(db, "ticker", []byte(ticker))
}

// FirstOwnedByTicker scans the symbol partition of the ticker index in
// ascending id order and returns the id and token of the first entry owned
// by the given address. Scan order makes the selection deterministic: the
// lowest id wins.
func (b TokenBucket) FirstOwnedByTicker(db ledger.KVStore, owner ledger.Address, ticker string) ([]byte, *Token, error) {
	idx, err := b.Index("ticker")
	if err != nil {
		return nil, nil, err
	}
	it := idx.Keys(db, []byte(ticker))
	defer it.Release()

	for {
		id, _, err := it.Next()
		switch {
		case errors.ErrIteratorDone.Is(err):
			return nil, nil, nil
		case err != nil:
			return nil, nil, err
		}
		token, err := b.GetToken(db, id)
		if err != nil {
			return nil, nil, err
		}
		if token != nil && token.Owner.Equals(owner) {
			return id, token, nil
		}
	}
}
