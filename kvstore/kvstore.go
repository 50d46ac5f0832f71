package kvstore

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/pydawan82/pypes"
)

// Common errors returned by store operations.
var (
	ErrKeyNotFound = errors.New("kvstore: key not found")
	ErrStoreClosed = errors.New("kvstore: store already closed")
)

// Entry is one key-value pair of a store scan. Value is a copy; the caller
// owns it.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a persistent ordered key-value store exposing its contents as
// lazy sequences. Keys and Entries hand out replayable sequences: every
// traversal opens a fresh engine iterator and observes the store as of that
// traversal's start, so mutating the store between passes is fine and each
// pass sees a consistent snapshot.
type Store struct {
	db     *pebble.DB
	opts   options
	closed atomic.Bool
}

// Open opens or creates the store at path.
func Open(path string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cache := pebble.NewCache(o.cacheSize)
	defer cache.Unref()

	db, err := pebble.Open(path, &pebble.Options{
		Cache:    cache,
		ReadOnly: o.readOnly,
		Logger:   eventLogger{log: o.logger},
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", path, err)
	}

	return &Store{db: db, opts: o}, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key string, value []byte) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	if err := s.db.Set([]byte(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("kvstore: set %s: %w", key, err)
	}
	return nil
}

// Get returns a copy of the value stored under key, or ErrKeyNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	value, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("kvstore: get %s: %w", key, err)
	}
	defer closer.Close()

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}

// Close closes the store. Sequences obtained from it yield nothing
// afterwards.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return ErrStoreClosed
	}
	return s.db.Close()
}

// Keys returns a lazy sequence of every key in the store, in ascending key
// order. The sequence is replayable; each traversal scans a fresh snapshot.
// Its count is not known up front, so Count consumes a full scan.
func (s *Store) Keys() pypes.Sequence[string] {
	entries := s.Entries()
	return pypes.Map(entries, func(e Entry) string { return e.Key })
}

// Entries returns a lazy sequence of every key-value pair in the store, in
// ascending key order, under the same rules as Keys. Value bytes are copied
// out of the engine's buffers before being yielded.
func (s *Store) Entries() pypes.Sequence[Entry] {
	return pypes.FromSeq(func(yield func(Entry) bool) {
		if s.closed.Load() {
			return
		}
		it, err := s.db.NewIter(nil)
		if err != nil {
			s.opts.logger.Error().Err(err).Msg("kvstore: open iterator")
			return
		}
		defer it.Close()

		for it.First(); it.Valid(); it.Next() {
			value := make([]byte, len(it.Value()))
			copy(value, it.Value())
			e := Entry{Key: string(it.Key()), Value: value}
			if !yield(e) {
				return
			}
		}
		if err := it.Error(); err != nil {
			s.opts.logger.Error().Err(err).Msg("kvstore: scan")
		}
	})
}
