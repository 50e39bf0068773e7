package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLStorePutGet(t *testing.T) {
	store := NewTTLStore()
	store.Put("k", "v", time.Minute)

	value, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestTTLStoreExpiry(t *testing.T) {
	store := NewTTLStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("k", "v", time.Minute)

	current = current.Add(61 * time.Second)
	_, ok := store.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestTTLStoreConsumeIsSingleUse(t *testing.T) {
	store := NewTTLStore()
	store.Put("k", "v", time.Minute)

	value, ok := store.Consume("k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	_, ok = store.Consume("k")
	assert.False(t, ok)
}

func TestTTLStoreConsumeExpired(t *testing.T) {
	store := NewTTLStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("k", "v", time.Minute)
	current = current.Add(2 * time.Minute)

	_, ok := store.Consume("k")
	assert.False(t, ok)
}

func TestTTLStoreSweepOnWrite(t *testing.T) {
	store := NewTTLStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("old", "v", time.Second)
	current = current.Add(2 * time.Second)
	store.Put("new", "v", time.Minute)

	assert.Equal(t, 1, store.Len())
}

func TestTTLStoreDelete(t *testing.T) {
	store := NewTTLStore()
	store.Put("k", "v", time.Minute)
	store.Delete("k")

	_, ok := store.Get("k")
	assert.False(t, ok)
}
