// Package session holds the console's single authenticated session: the acting
// identity, its bearer token, and the operator behind an impersonation.
package session

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Store is the single source of truth for the current session.
// Mutations never fail; persistence errors are logged and kept for PersistErr.
type Store struct {
	mu         sync.RWMutex
	state      State
	persister  Persister
	persistErr error
	logger     zerolog.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates a store and restores any previously persisted session.
// A nil persister keeps the session in memory only.
func NewStore(p Persister, opts ...Option) *Store {
	if p == nil {
		p = NopPersister{}
	}
	s := &Store{
		persister: p,
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := p.Load()
	if err != nil {
		s.persistErr = err
		s.logger.Warn().Err(err).Msg("Session: failed to restore persisted session, starting empty")
		return s
	}
	s.state = loaded.normalize()
	return s
}

// Login replaces the session with the given identity and token.
func (s *Store) Login(user Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(loginState(user, token))
}

// Logout resets the session to empty.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(State{})
}

// SetAccessToken swaps the token and keeps the identity and any impersonation link.
// Used after a token refresh.
func (s *Store) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(withToken(s.state, token))
}

// UpdateUser merges the set fields of patch into the current identity.
// Without an identity it does nothing.
func (s *Store) UpdateUser(patch IdentityPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok := updatedUser(s.state, patch); ok {
		s.setLocked(next)
	}
}

// StartImpersonation makes target the acting identity and remembers operator so it
// can be restored. When already impersonating, the first operator stays the one
// restored. The access token is not changed.
func (s *Store) StartImpersonation(target, operator Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(impersonating(s.state, target, operator))
}

// StopImpersonation restores the operator captured by StartImpersonation.
// Without an impersonation it does nothing.
func (s *Store) StopImpersonation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok := stoppedImpersonating(s.state); ok {
		s.setLocked(next)
	}
}

// HasPermission is false without an identity, true for the wildcard, and otherwise
// true only for an exact match.
func (s *Store) HasPermission(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return false
	}
	return s.state.User.HasPermission(key)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// CurrentUser returns a copy of the acting identity, or nil.
func (s *Store) CurrentUser() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := s.state.User.Clone()
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated()
}

func (s *Store) IsImpersonating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Impersonation != nil
}

// PersistErr returns the most recent load or save error, or nil after a successful save.
func (s *Store) PersistErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// setLocked must be called with mu held.
func (s *Store) setLocked(next State) {
	s.state = next
	if err := s.persister.Save(next.Clone()); err != nil {
		s.persistErr = err
		s.logger.Warn().Err(err).Msg("Session: failed to persist session")
		return
	}
	s.persistErr = nil
}
