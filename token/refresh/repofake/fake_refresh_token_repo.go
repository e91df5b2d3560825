// Package refreshrepofake is the mock server's in-memory refresh token store.
package refreshrepofake

import (
	"sync"

	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/token/refresh"
)

var _ refresh.Repo = (*FakeRefreshTokenRepo)(nil)

// FakeRefreshTokenRepo holds at most one token per user; storing a new one for a user
// evicts the previous token.
type FakeRefreshTokenRepo struct {
	lock   sync.RWMutex
	byTok  map[string]refresh.StoredRefreshToken
	byUser map[int64]string
}

func NewFakeRefreshTokenRepo() refresh.Repo {
	return &FakeRefreshTokenRepo{
		byTok:  map[string]refresh.StoredRefreshToken{},
		byUser: map[int64]string{},
	}
}

func (r *FakeRefreshTokenRepo) Upsert(rt *refresh.StoredRefreshToken) error {
	if rt == nil || rt.Token == "" {
		return errors.Wrapf(errors.ErrInvalidRefreshToken, "empty refresh token")
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if prev, ok := r.byUser[rt.UserID]; ok && prev != rt.Token {
		delete(r.byTok, prev)
	}
	r.byTok[rt.Token] = *rt
	r.byUser[rt.UserID] = rt.Token
	return nil
}

func (r *FakeRefreshTokenRepo) Delete(token string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	rt, ok := r.byTok[token]
	if !ok {
		return errors.ErrNotFound
	}
	delete(r.byTok, token)
	if r.byUser[rt.UserID] == token {
		delete(r.byUser, rt.UserID)
	}
	return nil
}

func (r *FakeRefreshTokenRepo) Get(token string) (*refresh.StoredRefreshToken, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	rt, ok := r.byTok[token]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &rt, nil
}

func (r *FakeRefreshTokenRepo) GetByUserID(userID int64) (*refresh.StoredRefreshToken, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	token, ok := r.byUser[userID]
	if !ok {
		return nil, errors.ErrNotFound
	}
	rt := r.byTok[token]
	return &rt, nil
}
