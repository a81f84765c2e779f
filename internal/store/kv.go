package store

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// KV is the persistent store: a mapping from named keys to opaque values,
// durable on one device. Each value is a complete JSON snapshot of one
// collection and is overwritten wholesale on every change.
type KV struct {
	db *badger.DB
}

func NewKV(db *badger.DB) *KV {
	return &KV{db: db}
}

// Get returns the stored value for key. The second return is false when the
// key has never been written (or was deleted); that is not an error.
func (k *KV) Get(key string) ([]byte, bool, error) {
	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Put overwrites the value stored under key.
func (k *KV) Put(key string, val []byte) error {
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

// Delete removes key. Deleting an absent key is a no-op.
func (k *KV) Delete(key string) error {
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
