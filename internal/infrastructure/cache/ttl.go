// Package cache provides the time-bounded memo used for flight batches and
// weather readings. Entries are stored without expiry; freshness is judged
// against an injected clock on read, so a stale entry stays available until
// it is overwritten or the cache is flushed.
package cache

import (
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/flight-board/airport-flight-board/internal/infrastructure/timeutil"
)

// Entry is a cached value and the instant it was stored.
type Entry[T any] struct {
	Value    T
	StoredAt time.Time
}

// TTLCache is a typed, clock-aware cache over go-cache.
type TTLCache[T any] struct {
	store *gocache.Cache
	clock timeutil.Clock
	ttl   time.Duration
}

// NewTTLCache creates a cache whose entries are fresh for ttl.
func NewTTLCache[T any](ttl time.Duration, clock timeutil.Clock) *TTLCache[T] {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TTLCache[T]{
		store: gocache.New(gocache.NoExpiration, 0),
		clock: clock,
		ttl:   ttl,
	}
}

// TTL returns the freshness window.
func (c *TTLCache[T]) TTL() time.Duration {
	return c.ttl
}

// Get returns the entry under key regardless of age.
func (c *TTLCache[T]) Get(key string) (Entry[T], bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return Entry[T]{}, false
	}
	e, ok := v.(Entry[T])
	return e, ok
}

// GetFresh returns the entry under key only when it is younger than the TTL.
func (c *TTLCache[T]) GetFresh(key string) (Entry[T], bool) {
	e, ok := c.Get(key)
	if !ok || !c.IsFresh(e) {
		return Entry[T]{}, false
	}
	return e, true
}

// IsFresh reports whether the entry is younger than the TTL.
func (c *TTLCache[T]) IsFresh(e Entry[T]) bool {
	return c.clock.Now().Sub(e.StoredAt) < c.ttl
}

// Set stores value under key, stamped with the current clock time, and
// returns the stored entry.
func (c *TTLCache[T]) Set(key string, value T) Entry[T] {
	e := Entry[T]{Value: value, StoredAt: c.clock.Now()}
	c.store.Set(key, e, gocache.NoExpiration)
	return e
}

// Range calls fn for every entry in key order until fn returns false.
func (c *TTLCache[T]) Range(fn func(key string, e Entry[T]) bool) {
	items := c.store.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e, ok := items[k].Object.(Entry[T])
		if !ok {
			continue
		}
		if !fn(k, e) {
			return
		}
	}
}

// Delete removes the entry under key.
func (c *TTLCache[T]) Delete(key string) {
	c.store.Delete(key)
}

// Flush removes every entry.
func (c *TTLCache[T]) Flush() {
	c.store.Flush()
}

// Len returns the number of entries.
func (c *TTLCache[T]) Len() int {
	return c.store.ItemCount()
}
