package kvstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/goleveldb/leveldb"
	"github.com/btcsuite/goleveldb/leveldb/opt"
	"github.com/btcsuite/goleveldb/leveldb/storage"
	"github.com/btcsuite/goleveldb/leveldb/util"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveWrite(err error, ops int, started time.Time)
	}
)

type nopMetrics struct{}

func (nopMetrics) ObserveWrite(error, int, time.Time) {}

// Store is a namespaced view over a single LevelDB instance.
type Store struct {
	db      *leveldb.DB
	metrics Metrics
}

// Open opens or creates the store at path.
func Open(path string, metrics Metrics) (*Store, error) {
	if path == "" {
		return nil, errors.New("kvstore path is required")
	}
	db, err := leveldb.OpenFile(path, &opt.Options{
		Compression: opt.NoCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("open leveldb at %s: %w", path, err)
	}
	return newStore(db, metrics), nil
}

// OpenMem opens a store backed by memory only.
func OpenMem(metrics Metrics) (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return newStore(db, metrics), nil
}

func newStore(db *leveldb.DB, metrics Metrics) *Store {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Store{db: db, metrics: metrics}
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key in table t. A missing key is
// reported as found == false with a nil error.
func (s *Store) Get(t Table, key []byte) ([]byte, bool, error) {
	k, err := t.Key(key)
	if err != nil {
		return nil, false, err
	}
	return s.get(k)
}

// Put writes a single value directly, bypassing any batching.
func (s *Store) Put(t Table, key, value []byte) error {
	k, err := t.Key(key)
	if err != nil {
		return err
	}
	if err := s.db.Put(k, value, nil); err != nil {
		return fmt.Errorf("put %s: %w", t, err)
	}
	return nil
}

// Delete removes a single key directly, bypassing any batching.
func (s *Store) Delete(t Table, key []byte) error {
	k, err := t.Key(key)
	if err != nil {
		return err
	}
	if err := s.db.Delete(k, nil); err != nil {
		return fmt.Errorf("delete %s: %w", t, err)
	}
	return nil
}

// GetMeta reads an unprefixed metadata key.
func (s *Store) GetMeta(key MetaKey) ([]byte, bool, error) {
	return s.get([]byte(key))
}

// Iterate calls fn for every key of table t in key order. Keys passed to fn
// have the namespace removed and are only valid during the call.
func (s *Store) Iterate(t Table, fn func(key, value []byte) error) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownTable, t)
	}
	iter := s.db.NewIterator(util.BytesPrefix([]byte{t.Prefix()}), nil)
	defer iter.Release()

	for iter.Next() {
		if err := fn(iter.Key()[1:], iter.Value()); err != nil {
			return err
		}
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("iterate %s: %w", t, err)
	}
	return nil
}

// Write applies ops and meta atomically. Each key is prefixed exactly once
// into a fresh batch; the caller's slices are left untouched.
func (s *Store) Write(ops []Op, meta []MetaOp) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveWrite(err, len(ops)+len(meta), started)
	}()

	batch := new(leveldb.Batch)
	for _, op := range ops {
		k, kerr := op.Table.Key(op.Key)
		if kerr != nil {
			err = kerr
			return err
		}
		if op.Delete {
			batch.Delete(k)
		} else {
			batch.Put(k, op.Value)
		}
	}
	for _, m := range meta {
		if m.Delete {
			batch.Delete([]byte(m.Key))
		} else {
			batch.Put([]byte(m.Key), m.Value)
		}
	}

	if err = s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		err = fmt.Errorf("write batch of %d ops: %w", batch.Len(), err)
		return err
	}
	return nil
}

func (s *Store) get(key []byte) ([]byte, bool, error) {
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %x: %w", key, err)
	}
	return value, true, nil
}
