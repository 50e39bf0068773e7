package helper

import (
	"sync"
	"time"
)

type ttlEntry struct {
	value     string
	expiresAt time.Time
}

// TTLStore is a keyed string store where every entry carries its own expiry.
// Expired entries are evicted lazily on access and swept opportunistically on
// writes. It backs short-lived tokens such as the password-reset jti.
type TTLStore struct {
	mu      sync.Mutex
	entries map[string]ttlEntry
	now     func() time.Time
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		entries: make(map[string]ttlEntry),
		now:     time.Now,
	}
}

// Put stores value under key for the given ttl, replacing any previous entry.
func (s *TTLStore) Put(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	s.entries[key] = ttlEntry{value: value, expiresAt: now.Add(ttl)}
}

// Get returns the live value for key, if any.
func (s *TTLStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return e.value, true
}

// Consume returns the live value for key and removes it, so the entry can be
// used at most once.
func (s *TTLStore) Consume(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	delete(s.entries, key)
	if !s.now().Before(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

// Delete removes key regardless of expiry.
func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len reports the number of live entries.
func (s *TTLStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.entries)
}

func (s *TTLStore) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
