package cache

import (
	"sync"
	"time"
)

// MemoryStore is an in-process key-value store with per-key expiry.
// It backs short-lived values that do not need to survive a restart,
// such as OAuth state tokens.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryStore creates an empty store and starts its sweeper
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{entries: make(map[string]memoryEntry)}
	go ms.sweep()
	return ms
}

// Set stores value under key until the expiration elapses
func (ms *MemoryStore) Set(key, value string, expiration time.Duration) {
	ms.mu.Lock()
	ms.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(expiration)}
	ms.mu.Unlock()
}

// Get returns the value for key, dropping it if it has expired
func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	e, ok := ms.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(ms.entries, key)
		return "", false
	}
	return e.value, true
}

// Delete removes key if present
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	delete(ms.entries, key)
	ms.mu.Unlock()
}

// sweep drops expired entries so abandoned keys do not accumulate
func (ms *MemoryStore) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		ms.mu.Lock()
		for key, e := range ms.entries {
			if now.After(e.expiresAt) {
				delete(ms.entries, key)
			}
		}
		ms.mu.Unlock()
	}
}
