package auth

import (
	"sync"
	"time"
)

// Blacklist holds revoked access tokens until they would have expired
// anyway. Logout adds the presented token; the auth middleware rejects
// blacklisted tokens.
type Blacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewBlacklist() *Blacklist {
	return &Blacklist{tokens: make(map[string]time.Time)}
}

// Revoke marks the token as unusable.
func (b *Blacklist) Revoke(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.purgeLocked()
	b.tokens[token] = time.Now().Add(accessTokenTTL)
}

// Contains reports whether the token has been revoked.
func (b *Blacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	expiry, ok := b.tokens[token]
	return ok && time.Now().Before(expiry)
}

func (b *Blacklist) purgeLocked() {
	now := time.Now()
	for token, expiry := range b.tokens {
		if now.After(expiry) {
			delete(b.tokens, token)
		}
	}
}
