package cache

import (
	"container/list"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultMaxSize       = 1000
	DefaultSweepInterval = time.Minute
)

type entry struct {
	key       string
	value     any
	expiresAt time.Time
	elem      *list.Element
}

// Cache is an in-process TTL cache bounded by a maximum number of entries.
// When full, the oldest inserted key is evicted to make room for a new one.
type Cache struct {
	mu    sync.Mutex
	items map[string]*entry
	order *list.List

	maxSize       int
	sweepInterval time.Duration
	now           func() time.Time
	recorder      Recorder
	group         *singleflight.Group

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64

	stop      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Size        int    `json:"size"`
	MaxSize     int    `json:"maxSize"`
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expirations uint64 `json:"expirations"`
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxSize bounds the number of live entries. Values below 1 are ignored.
func WithMaxSize(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithSweepInterval sets how often expired entries are purged in the
// background. A non-positive interval disables the sweeper.
func WithSweepInterval(d time.Duration) Option {
	return func(c *Cache) {
		c.sweepInterval = d
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCoalescing makes concurrent GetOrSet misses on the same key share a
// single fetch instead of each calling the fetcher.
func WithCoalescing() Option {
	return func(c *Cache) {
		c.group = &singleflight.Group{}
	}
}

// WithRecorder reports cache activity to r.
func WithRecorder(r Recorder) Option {
	return func(c *Cache) {
		if r != nil {
			c.recorder = r
		}
	}
}

// New creates a cache and starts its background sweeper. Call Close to stop it.
func New(opts ...Option) *Cache {
	c := &Cache{
		items:         make(map[string]*entry),
		order:         list.New(),
		maxSize:       DefaultMaxSize,
		sweepInterval: DefaultSweepInterval,
		now:           time.Now,
		recorder:      NoopRecorder{},
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.sweepInterval > 0 {
		c.wg.Add(1)
		go c.sweepLoop()
	}
	return c
}

// Get returns the value for key if it exists and has not expired.
// An expired entry is removed on the way out.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		c.recorder.RecordMiss()
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		c.removeLocked(e)
		c.expirations++
		c.misses++
		c.recorder.RecordExpiration(1)
		c.recorder.RecordMiss()
		c.recorder.RecordSize(len(c.items))
		return nil, false
	}

	c.hits++
	c.recorder.RecordHit()
	return e.value, true
}

// Set stores value under key for ttl. Overwriting a key resets its expiry
// but keeps its original insertion position.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		return
	}

	if len(c.items) >= c.maxSize {
		if oldest := c.order.Front(); oldest != nil {
			c.removeLocked(oldest.Value.(*entry))
			c.evictions++
			c.recorder.RecordEviction()
		}
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	e.elem = c.order.PushBack(e)
	c.items[key] = e
	c.recorder.RecordSize(len(c.items))
}

// GetOrSet returns the live value for key, or calls fetch, stores its result
// for ttl and returns it. Errors from fetch are returned and never cached.
//
// The fetch runs detached from ctx: if ctx is done before fetch returns,
// GetOrSet returns ctx.Err() but the fetch still completes and populates
// the cache for later callers.
func (c *Cache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		value any
		err   error
	}
	done := make(chan result, 1)
	fetchCtx := context.WithoutCancel(ctx)

	go func() {
		v, err := c.load(fetchCtx, key, ttl, fetch)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) load(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (any, error)) (any, error) {
	if c.group == nil {
		return c.fetchAndStore(ctx, key, ttl, fetch)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// another flight may have stored the value while this one queued
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		return c.fetchAndStore(ctx, key, ttl, fetch)
	})
	return v, err
}

func (c *Cache) fetchAndStore(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("cache: fetch for %q panicked: %v", key, r)
		}
	}()

	v, err = fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(key, v, ttl)
	return v, nil
}

// peek reads a live entry without touching hit/miss counters.
func (c *Cache) peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Invalidate deletes keyOrPrefix if it is an existing key. Otherwise it
// deletes every key that starts with keyOrPrefix. It returns the number of
// entries removed.
func (c *Cache) Invalidate(keyOrPrefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[keyOrPrefix]; ok {
		c.removeLocked(e)
		c.recorder.RecordSize(len(c.items))
		return 1
	}
	return c.removePrefixLocked(keyOrPrefix)
}

// InvalidateExact deletes key only. It reports whether the key was present.
func (c *Cache) InvalidateExact(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeLocked(e)
	c.recorder.RecordSize(len(c.items))
	return true
}

// InvalidatePrefix deletes every key starting with prefix, including a key
// equal to prefix.
func (c *Cache) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removePrefixLocked(prefix)
}

func (c *Cache) removePrefixLocked(prefix string) int {
	removed := 0
	for key, e := range c.items {
		if strings.HasPrefix(key, prefix) {
			c.removeLocked(e)
			removed++
		}
	}
	if removed > 0 {
		c.recorder.RecordSize(len(c.items))
	}
	return removed
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry)
	c.order.Init()
	c.recorder.RecordSize(0)
}

// Stats returns the current size and counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Size:        len(c.items),
		MaxSize:     c.maxSize,
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
	}
}

// Sweep removes every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, e := range c.items {
		if !now.Before(e.expiresAt) {
			c.removeLocked(e)
			removed++
		}
	}
	if removed > 0 {
		c.expirations += uint64(removed)
		c.recorder.RecordExpiration(removed)
		c.recorder.RecordSize(len(c.items))
	}
	return removed
}

// Close stops the background sweeper. It is safe to call more than once.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.stop)
	})
	c.wg.Wait()
}

func (c *Cache) sweepLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Sweep()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) removeLocked(e *entry) {
	delete(c.items, e.key)
	c.order.Remove(e.elem)
}
