package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
	"github.com/chetan1913051012-sudo/effective-system/pkg/retry"
)

var _ port.DocumentLoader = (*DocumentStore)(nil)
var _ port.DocumentSaver = (*DocumentStore)(nil)

const saveAttempts = 3

// DocumentStore keeps independently keyed JSON documents in an
// on-device leveldb database. Loads must complete before the first
// save is accepted, so an empty session never clobbers a previously
// durable snapshot.
type DocumentStore struct {
	db       *leveldb.DB
	hydrated atomic.Bool
}

func Open(path string) (*DocumentStore, error) {
	const op = "storage.Open"

	var db *leveldb.DB
	err := retry.Do(context.Background(),
		retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(200 * time.Millisecond),
		},
		func() error {
			var openErr error
			db, openErr = leveldb.OpenFile(path, nil)
			return openErr
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &DocumentStore{db: db}, nil
}

// OpenMemory backs the store with volatile memory, for tests.
func OpenMemory() *DocumentStore {
	db, _ := leveldb.Open(ldbstorage.NewMemStorage(), nil)
	return &DocumentStore{db: db}
}

// Load populates doc from the named slot. A missing slot, a read
// failure or unparseable data leaves doc untouched and returns false;
// nothing propagates to the caller.
func (s *DocumentStore) Load(name string, doc any) bool {
	const op = "DocumentStore.Load"
	log := slog.With("op", op, "doc", name)

	data, err := s.db.Get([]byte(name), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			log.Debug("no durable copy")
			return false
		}
		log.Error("failed to read durable copy", "err", err)
		return false
	}

	if err := json.Unmarshal(data, doc); err != nil {
		log.Warn("durable copy is unparseable, keeping defaults", "err", err)
		return false
	}
	return true
}

// FinishHydration marks loading complete and unlocks Save.
func (s *DocumentStore) FinishHydration() {
	s.hydrated.Store(true)
}

// Save writes doc through to its slot, best-effort. Failures are
// retried briefly, then swallowed and logged: in-memory state stays
// authoritative for the session.
func (s *DocumentStore) Save(name string, doc any) {
	const op = "DocumentStore.Save"
	log := slog.With("op", op, "doc", name)

	if !s.hydrated.Load() {
		log.Warn("save refused before hydration completed")
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		log.Error("failed to encode document", "err", err)
		return
	}

	err = retry.Do(context.Background(),
		retry.Config{
			MaxAttempts: saveAttempts,
			Backoff:     retry.LinearBackoff(50 * time.Millisecond),
		},
		func() error {
			return s.db.Put([]byte(name), data, nil)
		},
	)
	if err != nil {
		log.Error("failed to persist document", "err", err)
	}
}

func (s *DocumentStore) Close() {
	const op = "DocumentStore.Close"
	log := slog.With("op", op)

	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("document store is closed")
}
