/*
Package store provides an in-memory key value store ordered by key, with
cache wraps that collect writes and apply them to the parent store at once.
*/
package store

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// CacheableKVStore is a KVStore that supports CacheWrapping.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data
// that we can view with all queries.
//
// At the end, the data is either applied to the parent store with Write or
// thrown away with Discard.
type KVCacheWrap interface {
	CacheableKVStore

	// Write applies all changes to the parent store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}
