package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/redeem/errors"
)

// DefaultFreeListSize is the size we hold for free nodes in a btree.
const DefaultFreeListSize = btree.DefaultFreeListSize

// MemStore is a store holding all data in a btree. There is no persistence.
// MemStore is not safe for concurrent use.
type MemStore struct {
	bt   *btree.BTree
	free *btree.FreeList
}

var _ CacheableKVStore = (*MemStore)(nil)

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	free := btree.NewFreeList(DefaultFreeListSize)
	return &MemStore{
		bt:   btree.NewWithFreeList(2, free),
		free: free,
	}
}

// Get returns the value stored under key or nil.
func (m *MemStore) Get(key []byte) ([]byte, error) {
	mustKey(key)
	res := m.bt.Get(bkey{key})
	if res == nil {
		return nil, nil
	}
	item, ok := res.(setItem)
	if !ok {
		return nil, errors.Wrapf(errors.ErrState, "unknown item in btree: %#v", res)
	}
	return item.value, nil
}

// Has returns true if a value is stored under key.
func (m *MemStore) Has(key []byte) (bool, error) {
	mustKey(key)
	return m.bt.Has(bkey{key}), nil
}

// Set stores value under key, replacing any previous value.
func (m *MemStore) Set(key, value []byte) error {
	mustKey(key)
	m.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *MemStore) Delete(key []byte) error {
	mustKey(key)
	m.bt.Delete(bkey{key})
	return nil
}

// CacheWrap returns a BTreeCacheWrap that can be later written to this
// store, or discarded.
func (m *MemStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(m, m.free)
}

// BTreeCacheWrap places a btree cache over a KVStore. Writes are only
// visible through the wrap until Write is called.
type BTreeCacheWrap struct {
	bt   *btree.BTree
	free *btree.FreeList
	back KVStore
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a btree to cache around kv.
//
// free may be nil, but set to an existing list to reuse it for memory
// savings.
func NewBTreeCacheWrap(kv KVStore, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:   btree.NewWithFreeList(2, free),
		free: free,
		back: kv,
	}
}

// CacheWrap layers another btree on top of this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// Write applies all changes in key order to the backing store and then
// discards them.
func (b BTreeCacheWrap) Write() error {
	var err error
	b.bt.Ascend(func(i btree.Item) bool {
		switch item := i.(type) {
		case setItem:
			err = b.back.Set(item.key, item.value)
		case deletedItem:
			err = b.back.Delete(item.key)
		default:
			err = errors.Wrapf(errors.ErrState, "unknown item in btree: %#v", i)
		}
		return err == nil
	})
	b.Discard()
	return err
}

// Discard releases all cached changes to the free list.
func (b BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
}

// Set writes to the btree only.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	mustKey(key)
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete marks key as deleted in the btree.
func (b BTreeCacheWrap) Delete(key []byte) error {
	mustKey(key)
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return nil
}

// Get reads from btree if there, else backing store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	mustKey(key)
	res := b.bt.Get(bkey{key})
	if res == nil {
		return b.back.Get(key)
	}
	switch t := res.(type) {
	case setItem:
		return t.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "unknown item in btree: %#v", res)
	}
}

// Has reads from btree if there, else backing store.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	mustKey(key)
	res := b.bt.Get(bkey{key})
	if res == nil {
		return b.back.Has(key)
	}
	switch res.(type) {
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrState, "unknown item in btree: %#v", res)
	}
}

func mustKey(key []byte) {
	if key == nil {
		panic("nil key")
	}
}

// keyer is implemented by every item kept in a btree so that items of
// different types compare by key.
type keyer interface {
	Key() []byte
}

type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}
