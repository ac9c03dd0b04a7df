package middleware

import (
	"sync"
	"time"
)

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

type cacheEntry struct {
	resp    *cachedResponse
	pending bool
}

// IdempotencyCache keeps replayable responses keyed by a request
// fingerprint. A key is marked pending while its first request runs.
type IdempotencyCache struct {
	mu       sync.Mutex
	items    map[string]*cacheEntry
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyCache creates a cache and starts its cleanup goroutine.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	c := &IdempotencyCache{
		items:  make(map[string]*cacheEntry),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// reserve returns the stored response for key, or marks key pending.
// inFlight is true when another request holds the key.
func (c *IdempotencyCache) reserve(key string) (resp *cachedResponse, inFlight bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		if e.pending {
			return nil, true
		}
		if c.now().Sub(e.resp.StoredAt) <= c.ttl {
			return e.resp, false
		}
	}
	c.items[key] = &cacheEntry{pending: true}
	return nil, false
}

func (c *IdempotencyCache) complete(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.StoredAt = c.now()
	c.items[key] = &cacheEntry{resp: resp}
}

func (c *IdempotencyCache) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok && e.pending {
		delete(c.items, key)
	}
}

// Len returns the number of stored or pending keys.
func (c *IdempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop ends the cleanup goroutine.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.items {
		if !e.pending && now.Sub(e.resp.StoredAt) > c.ttl {
			delete(c.items, key)
		}
	}
}
