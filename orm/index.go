package orm

import (
	"bytes"
	"math"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

// Index maintains a secondary index over bucket entities.
type Index interface {
	// Name returns the name of this index.
	Name() string

	// Update updates the index. It should be called when any of the bucket
	// entities has changed in the store.
	//
	// prev == nil means insert
	// save == nil means delete
	// both == nil is error
	// if both != nil and prev.Key() != save.Key() this is an error
	Update(db ledger.KVStore, prev Object, save Object) error

	// Keys returns an iterator that returns all entity keys that were
	// indexed under given value.
	//
	// Values of returned iterator are always nil to optimize for a lazy
	// loading flows and avoid loading into memory values from the database
	// when they might not be needed.
	Keys(db ledger.ReadOnlyKVStore, value []byte) ledger.Iterator
}

// Indexer calculates the secondary index key for a given object
type Indexer func(Object) ([]byte, error)

// MultiKeyIndexer calculates the secondary index keys for a given object
type MultiKeyIndexer func(Object) ([][]byte, error)

func asMultiKeyIndexer(indexer Indexer) MultiKeyIndexer {
	return func(obj Object) ([][]byte, error) {
		key, err := indexer(obj)
		switch {
		case err != nil:
			return nil, err
		case key == nil:
			return nil, nil
		}
		return [][]byte{key}, nil
	}
}

const nativeIdxPrefix = "_x."

// NewNativeIndex returns an index implementation that is using a database
// native storage and query in order to maintain and provide access to an
// index.
func NewNativeIndex(name string, indexer MultiKeyIndexer, dbKey func([]byte) []byte) Index {
	return &nativeIndex{
		name:    name,
		indexer: indexer,
		dbKey:   dbKey,
	}
}

// nativeIndex is an index implementation that is using a database native
// storage and query in order to maintain and provide access to an index.
type nativeIndex struct {
	name    string
	indexer MultiKeyIndexer
	// dbKey is a function that for given entity ID returns that entity
	// database key.
	dbKey func([]byte) []byte
}

func (ix *nativeIndex) Name() string {
	return ix.name
}

// Update updates the index. It should be called when any of the bucket
// entities has changed in the store.
//
// prev == nil means insert
// next == nil means delete
// both == nil is error
// if both != nil and prev.Key() != next.Key() this is an error
func (ix *nativeIndex) Update(db ledger.KVStore, prev Object, next Object) error {
	if next == nil && prev == nil {
		return errors.Wrap(errors.ErrInput, "update requires at least one non-nil object")
	}
	if next != nil && prev != nil {
		if !bytes.Equal(next.Key(), prev.Key()) {
			return errors.Wrap(errors.ErrState, "previous key is not the same as the new one")
		}
	}

	// Delete.
	if prev != nil {
		values, err := ix.indexer(prev)
		if err != nil {
			return errors.Wrap(err, "indexer")
		}
		for _, v := range values {
			idxKey, err := packNativeIdxKey([][]byte{[]byte(ix.name), v, prev.Key()})
			if err != nil {
				return errors.Wrap(err, "build index key")
			}
			if err := db.Delete(idxKey); err != nil {
				return errors.Wrap(err, "db delete")
			}
		}
	}

	// Insert.
	if next != nil {
		values, err := ix.indexer(next)
		if err != nil {
			return errors.Wrap(err, "indexer")
		}
		for _, v := range values {
			idxKey, err := packNativeIdxKey([][]byte{[]byte(ix.name), v, next.Key()})
			if err != nil {
				return errors.Wrap(err, "build index key")
			}
			if err := db.Set(idxKey, []byte{}); err != nil {
				return errors.Wrap(err, "db set")
			}
		}
	}

	return nil
}

// Keys returns an iterator over all entity keys indexed under given value.
// Entity keys are returned in ascending byte order.
func (ix *nativeIndex) Keys(db ledger.ReadOnlyKVStore, value []byte) ledger.Iterator {
	lookupKey, err := packNativeIdxKey([][]byte{[]byte(ix.name), value})
	if err != nil {
		return &failedIterator{err: errors.Wrap(err, "build index key")}
	}

	// Index key are built is a specific way, that allow using the native
	// database key iteration in order to find all indexed entries. Index
	// key is in format:
	//    <prefix>#<index name>#<value>#<entity id>
	// where # is a serialization specific data, irrelevant for the
	// algorithm.
	// To iterate over all values matching given index, iterate over all
	// keys between:
	//    <prefix>#<index name>#<value> and <prefix>#<index name>#<value>{255}
	//
	// Parse matching keys and return the last part of it, being the
	// indexed entity.
	// Value 255 is reserved to make sure no indexed key is matching it
	// (see packNativeIdxKey function).

	start := lookupKey
	end := make([]byte, len(lookupKey)+1)
	copy(end, lookupKey)
	// MaxUint8 is not used by serializer so we can use it as the maximum
	// value guard.
	end[len(end)-1] = math.MaxUint8

	it, err := db.Iterator(start, end)
	if err != nil {
		return &failedIterator{err: err}
	}

	return &nativeIndexIterator{dbit: it}
}

type failedIterator struct {
	err error
}

var _ ledger.Iterator = (*failedIterator)(nil)

func (it *failedIterator) Next() ([]byte, []byte, error) {
	return nil, nil, it.err
}

func (failedIterator) Release() {}

// nativeIndexIterator wraps a database iterator and parse results to provide
// indexed entities keys. It provides an interface that returns only the
// relevant data, hiding from the user native index implementation details.
type nativeIndexIterator struct {
	dbit ledger.Iterator
}

var _ ledger.Iterator = (*nativeIndexIterator)(nil)

func (it *nativeIndexIterator) Release() {
	it.dbit.Release()
}

func (it *nativeIndexIterator) Next() ([]byte, []byte, error) {
	key, _, err := it.dbit.Next()
	if err != nil {
		return key, nil, err
	}
	chunks, err := unpackNativeIdxKey(key)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unpack native index key")
	}
	return chunks[len(chunks)-1], nil, nil
}

// ConsumeIteratorKeys returns a list of all keys that given iterator returns.
// This function should be used only for iterators when the result size is
// known to be small as all results are kept in memory.
// This function releases the iterator.
func ConsumeIteratorKeys(it ledger.Iterator) ([][]byte, error) {
	defer it.Release()

	var keys [][]byte
	for {
		switch k, _, err := it.Next(); {
		case err == nil:
			keys = append(keys, k)
		case errors.ErrIteratorDone.Is(err):
			return keys, nil
		default:
			return keys, err
		}
	}
}

// packNativeIdxKey serialize a native index key from a set of values to a
// single key. This process can be reversed using unpackNativeIdxKey function.
//
// Native index key is a byte array. After the same for every native index
// prefix, a collection of bytes is serialized in order. Each element of the
// collection must be at most 254 bytes long.
//
// When serialized, each chunk is prefixed with its length, encoded as a uint8
// value.  If a key is created from 3 chunks, "aaa", "" and "c", that key
// representation is:
//
//   _x.<3>aaa<0><1>c
//
// where <3>, <0> and <1> are that number values in bytes.
func packNativeIdxKey(chunks [][]byte) ([]byte, error) {
	var size int
	for _, b := range chunks {
		size += len(b) + 1
	}
	// First bytes are prefix information.
	res := make([]byte, 0, size+len(nativeIdxPrefix))
	res = append(res, nativeIdxPrefix...)

	for _, b := range chunks {
		// MaxUint8 is reserved for the search purpose. MaxUint8 - 1 is
		// the greatest allowed length.
		if len(b) > math.MaxUint8-1 {
			return nil, errors.Wrapf(errors.ErrInput, "no chunk can be bigger than %d bytes", math.MaxUint8-1)
		}
		res = append(res, uint8(len(b)))
		res = append(res, b...)
	}
	return res, nil
}

// unpackNativeIdxKey decodes native index key and extracts all chunks that
// compose that key.
func unpackNativeIdxKey(b []byte) ([][]byte, error) {
	if len(b) < len(nativeIdxPrefix) {
		return nil, errors.Wrap(errors.ErrInput, "not a native index key")
	}
	if !bytes.Equal(b[:len(nativeIdxPrefix)], []byte(nativeIdxPrefix)) {
		return nil, errors.Wrap(errors.ErrInput, "not a native index key")
	}
	b = b[len(nativeIdxPrefix):]
	res := make([][]byte, 0, 6)
	for len(b) > 0 {
		size := uint8(b[0])
		if len(b) < 1+int(size) {
			return nil, errors.Wrap(errors.ErrInput, "malformed offset")
		}
		res = append(res, b[1:1+size])
		b = b[1+size:]
	}
	return res, nil
}
