package token

import (
	"fmt"
	"sync"
	"time"
)

// RevokedTokenCache remembers the jti of signed-out access tokens until the token
// would have expired on its own. After that the signature check rejects it anyway.
type RevokedTokenCache interface {
	Add(jti string, exp time.Time) error
	IsRevoked(jti string) bool
	// Cleanup drops entries past their expiry and returns how many it dropped.
	Cleanup() int
}

type jtiBlocklist struct {
	mu      sync.RWMutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewInMemoryRevokedTokenCache keeps revoked jtis in memory; now is the clock expiry
// is measured against (time.Now when nil).
func NewInMemoryRevokedTokenCache(now func() time.Time) RevokedTokenCache {
	if now == nil {
		now = time.Now
	}
	return &jtiBlocklist{expires: map[string]time.Time{}, now: now}
}

func (b *jtiBlocklist) Add(jti string, exp time.Time) error {
	if jti == "" {
		return fmt.Errorf("revoke: token has no jti")
	}
	if !exp.After(b.now()) {
		return nil
	}

	b.mu.Lock()
	b.expires[jti] = exp
	b.mu.Unlock()
	return nil
}

func (b *jtiBlocklist) IsRevoked(jti string) bool {
	b.mu.RLock()
	exp, ok := b.expires[jti]
	b.mu.RUnlock()
	return ok && exp.After(b.now())
}

func (b *jtiBlocklist) Cleanup() int {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()
	dropped := 0
	for jti, exp := range b.expires {
		if !exp.After(now) {
			delete(b.expires, jti)
			dropped++
		}
	}
	return dropped
}
