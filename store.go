package ledger

// ReadOnlyKVStore is a simple interface to read data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive. Start must be greater than end, or the Iterator is
	// invalid.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing.
type SetDeleter interface {
	Set(key, value []byte) error // CONTRACT: key, value readonly []byte
	Delete(key []byte) error     // CONTRACT: key readonly []byte
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

// Batch groups writes to be committed to the underlying store in one unit.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator allows iteration over a domain of keys.
//
//	it, err := store.Iterator(start, end)
//	for {
//		key, value, err := it.Next()
//		if errors.ErrIteratorDone.Is(err) {
//			break
//		}
//		...
//	}
//	it.Release()
type Iterator interface {
	// Next moves the iterator to the next sequential key in the
	// database, as defined by order of iteration. It returns
	// errors.ErrIteratorDone when the iterator is exhausted.
	Next() (key, value []byte, err error)

	// Release releases the Iterator.
	Release()
}

// CacheableKVStore is a KVStore that supports CacheWrapping
//
// CacheWrap() should not return a Committer, since Commit() on
// cache-wraps make no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data
// that we can view with all queries.
//
// At the end, call Write to use the cached data, or Discard to drop it.
// This is how the all-or-nothing property of an operation is realized: the
// host runs every handler against a cache-wrap and only writes it through
// when the handler reports success.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}

// Model groups together key and value to pair them for range reads.
type Model struct {
	Key   []byte
	Value []byte
}
