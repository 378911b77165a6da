// Package config persists named evaluator/search presets in an embedded
// BadgerDB store, so a caller can tune fallbeam's weights once and reuse
// the tuning across runs without recompiling.
package config

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/corvette-dev/fallbeam/internal/eval"
	"github.com/corvette-dev/fallbeam/internal/search"
)

// ErrPresetNotFound is returned by Load when no preset was ever saved
// under the requested name.
var ErrPresetNotFound = errors.New("config: preset not found")

const presetKeyPrefix = "preset:"

// Preset bundles an evaluator tuning with the search bounds it was tuned
// against; the two are saved and loaded together since a weight set
// tends to be calibrated for a particular beam width and depth.
type Preset struct {
	Name    string          `json:"name"`
	Weights eval.Weights    `json:"weights"`
	Configs search.BotConfigs `json:"configs"`
}

// Store wraps a BadgerDB handle. It holds no in-memory cache: every call
// round-trips through the database, matching the teacher's storage
// layer's one-db-handle-per-process model.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a BadgerDB database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save writes p under its own Name, overwriting any existing preset with
// the same name.
func (s *Store) Save(p Preset) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(presetKeyPrefix+p.Name), data)
	})
}

// Load reads the preset saved under name, or ErrPresetNotFound if none
// exists.
func (s *Store) Load(name string) (Preset, error) {
	var p Preset

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(presetKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrPresetNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})

	return p, err
}

// List returns the names of every saved preset.
func (s *Store) List() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(presetKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			names = append(names, string(key[len(prefix):]))
		}
		return nil
	})

	return names, err
}

// Delete removes the preset saved under name. Deleting a name that was
// never saved is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(presetKeyPrefix + name))
	})
}
