package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

const statePrefix = "oauth:state:"

// Store holds state tokens between the redirect and the callback
type Store interface {
	Set(key, value string, expiration time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

// StateManager issues and checks one-time CSRF state tokens for the
// OAuth redirect flow.
type StateManager struct {
	store Store
	ttl   time.Duration
}

// NewStateManager wraps a store; tokens expire after 15 minutes,
// which bounds how long a login redirect can sit unfinished.
func NewStateManager(store Store) *StateManager {
	return &StateManager{store: store, ttl: 15 * time.Minute}
}

// GenerateState mints a random token and records it for one use
func (sm *StateManager) GenerateState() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	state := base64.URLEncoding.EncodeToString(raw)
	sm.store.Set(statePrefix+state, "1", sm.ttl)
	return state, nil
}

// ValidateState consumes a token. A token validates at most once;
// replays and expired tokens return false.
func (sm *StateManager) ValidateState(state string) bool {
	key := statePrefix + state
	if _, ok := sm.store.Get(key); !ok {
		return false
	}
	sm.store.Delete(key)
	return true
}
