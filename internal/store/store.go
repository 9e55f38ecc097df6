// Package store keeps the identifiers the SDK hands out in startup params,
// under the same keys the native SDK uses, so hosts can read them without a
// round trip to the bridge.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/metrica-go/metrica/internal/models"
)

const (
	keyPrefix = "identifiers/"
	cacheSize = 64
)

var ErrNotFound = errors.New("store: not found")

type Store struct {
	db     *badger.DB
	cache  *lru.Cache[string, string]
	logger *slog.Logger
}

// Open opens (or creates) the store in dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	return open(badger.DefaultOptions(dir), logger)
}

// OpenInMemory opens a store that is lost on Close.
func OpenInMemory(logger *slog.Logger) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), logger)
}

func open(opts badger.Options, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open identifier store: %w", err)
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create identifier cache: %w", err)
	}
	return &Store{db: db, cache: cache, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.cache.Add(key, value)
	return value, nil
}

func (s *Store) Set(key string, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	s.cache.Add(key, value)
	return nil
}

// SaveStartupParams stores every non-empty identifier in p in one
// transaction.
func (s *Store) SaveStartupParams(p models.StartupParams) error {
	values := p.Values()
	if len(values) == 0 {
		return nil
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for k, v := range values {
			if err := txn.Set([]byte(keyPrefix+k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store startup params: %w", err)
	}

	for k, v := range values {
		s.cache.Add(k, v)
	}
	s.logger.Debug("startup params stored", "keys", len(values))
	return nil
}

// Identifiers returns whatever identifiers are stored; missing ones are
// left empty.
func (s *Store) Identifiers() (models.StartupParams, error) {
	var p models.StartupParams
	fields := []struct {
		key string
		dst *string
	}{
		{models.DeviceIDHashKey, &p.DeviceIDHash},
		{models.DeviceIDKey, &p.DeviceID},
		{models.UUIDKey, &p.UUID},
	}
	for _, f := range fields {
		v, err := s.Get(f.key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return models.StartupParams{}, err
		}
		*f.dst = v
	}
	return p, nil
}
