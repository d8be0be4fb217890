package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/salesboard/backend/internal/application/analytics"
)

// cleanupInterval controls how often expired entries are swept.
const cleanupInterval = 30 * time.Second

// InMemoryReportCache implements analytics.ReportCache using process-local
// storage. Suitable for single-instance deployments and as a fallback when
// Redis is not configured.
type InMemoryReportCache struct {
	entries sync.Map // map[string]*reportEntry
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

// reportEntry wraps a cached report with its expiration time
type reportEntry struct {
	report    []analytics.SellerReportEntry
	expiresAt time.Time
}

func (e *reportEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// NewInMemoryReportCache creates a new in-memory report cache and starts its
// background cleanup goroutine.
func NewInMemoryReportCache() *InMemoryReportCache {
	c := &InMemoryReportCache{
		stopCh: make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves a cached report if present and not expired.
func (c *InMemoryReportCache) Get(ctx context.Context, key string) ([]analytics.SellerReportEntry, bool) {
	if value, ok := c.entries.Load(key); ok {
		entry := value.(*reportEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.report, true
		}
		c.entries.Delete(key)
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

// Set stores a computed report with a TTL.
func (c *InMemoryReportCache) Set(ctx context.Context, key string, entries []analytics.SellerReportEntry, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.entries.Store(key, &reportEntry{
		report:    entries,
		expiresAt: time.Now().Add(ttl),
	})
}

// Invalidate removes all cached reports.
func (c *InMemoryReportCache) Invalidate(ctx context.Context) error {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
	return nil
}

// Stats returns hit and miss counters.
func (c *InMemoryReportCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *InMemoryReportCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// cleanupExpired periodically removes expired entries
func (c *InMemoryReportCache) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value any) bool {
				if value.(*reportEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// Ensure InMemoryReportCache implements ReportCache
var _ analytics.ReportCache = (*InMemoryReportCache)(nil)
