// Package cache memoizes slow bridge or store reads for the inspector.
package cache

import (
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 3 * time.Second

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Stale serves cached values and refreshes them in the background once
// they are older than the TTL. Concurrent misses for one key share a single
// fetch; failed fetches are not cached.
type Stale[T any] struct {
	entries *xsync.Map[string, entry[T]]
	sfg     singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

func NewStale[T any](ttl time.Duration) *Stale[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Stale[T]{
		entries: xsync.NewMap[string, entry[T]](),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Stale[T]) Get(key string, fetch func() (T, error)) (T, error) {
	if e, ok := c.entries.Load(key); ok {
		if c.now().Sub(e.fetchedAt) > c.ttl {
			go c.sfg.Do(key, func() (any, error) {
				c.fill(key, fetch)
				return nil, nil
			})
		}
		return e.value, nil
	}

	v, err, _ := c.sfg.Do(key, func() (any, error) {
		if e, ok := c.entries.Load(key); ok {
			return e, nil
		}
		return c.fill(key, fetch)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(entry[T]).value, nil
}

// Forget drops key so the next Get fetches synchronously.
func (c *Stale[T]) Forget(key string) {
	c.entries.Delete(key)
}

func (c *Stale[T]) fill(key string, fetch func() (T, error)) (entry[T], error) {
	v, err := fetch()
	if err != nil {
		return entry[T]{}, err
	}
	e := entry[T]{value: v, fetchedAt: c.now()}
	c.entries.Store(key, e)
	return e, nil
}
