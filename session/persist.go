package session

import (
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/storage"
)

// StorageKey is the storage entry holding the serialized session.
const StorageKey = "temco-admin-auth"

// Persister loads and saves the session. Implementations must return an empty
// State and no error when nothing has been saved yet.
type Persister interface {
	Load() (State, error)
	Save(State) error
}

// persistedSession is the on-disk envelope: {"state": {...}, "version": 0}.
type persistedSession struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

const persistVersion = 0

// StoragePersister keeps the session as JSON under a single storage key
type StoragePersister struct {
	store storage.Storage
	key   string
}

var _ Persister = (*StoragePersister)(nil)

func NewStoragePersister(store storage.Storage) *StoragePersister {
	return &StoragePersister{store: store, key: StorageKey}
}

func (p *StoragePersister) Load() (State, error) {
	b, err := p.store.Get(p.key)
	if errors.Is(err, storage.ErrNotFound) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session: %w", err)
	}

	var ps persistedSession
	if err := json.Unmarshal(b, &ps); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}
	if ps.Version != persistVersion {
		return State{}, fmt.Errorf("decode session: unsupported version %d", ps.Version)
	}
	return ps.State, nil
}

func (p *StoragePersister) Save(s State) error {
	b, err := json.Marshal(persistedSession{State: s, Version: persistVersion})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := p.store.Set(p.key, b); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// NopPersister never stores anything.
type NopPersister struct{}

var _ Persister = NopPersister{}

func (NopPersister) Load() (State, error) { return State{}, nil }
func (NopPersister) Save(State) error     { return nil }
