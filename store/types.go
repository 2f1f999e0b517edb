package store

import (
	"github.com/iov-one/ledger"
)

// Store aliases to root types, so they can be used
// in the store implementation without cycles.
type (
	ReadOnlyKVStore  = ledger.ReadOnlyKVStore
	KVStore          = ledger.KVStore
	SetDeleter       = ledger.SetDeleter
	Batch            = ledger.Batch
	Iterator         = ledger.Iterator
	CacheableKVStore = ledger.CacheableKVStore
	KVCacheWrap      = ledger.KVCacheWrap
	Model            = ledger.Model
)
