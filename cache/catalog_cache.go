package catalog_cache

import (
	"context"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
)

const TTL = 5 * time.Minute

// CatalogStore keeps one catalog snapshot. Stores never fail: a broken
// backend behaves like a miss.
type CatalogStore interface {
	Get(ctx context.Context) (models.ProductList, bool)
	Set(ctx context.Context, list models.ProductList)
	Invalidate(ctx context.Context)
}

// ── In-memory snapshot ───────────────────────────────────────────────────────

type snapshotEntry struct {
	list      models.ProductList
	fetchedAt time.Time
}

// MemoryStore holds the snapshot in process for ttl.
type MemoryStore struct {
	mu    sync.RWMutex
	entry *snapshotEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates a store; ttl <= 0 means TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &MemoryStore{ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context) (models.ProductList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entry != nil && s.now().Sub(s.entry.fetchedAt) < s.ttl {
		return s.entry.list, true
	}
	return models.ProductList{}, false
}

func (s *MemoryStore) Set(_ context.Context, list models.ProductList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = &snapshotEntry{list: list, fetchedAt: s.now()}
}

func (s *MemoryStore) Invalidate(_ context.Context) {
	s.mu.Lock()
	s.entry = nil
	s.mu.Unlock()
}

// ── Disabled cache ───────────────────────────────────────────────────────────

// NoopStore never holds anything.
type NoopStore struct{}

func (NoopStore) Get(context.Context) (models.ProductList, bool) { return models.ProductList{}, false }
func (NoopStore) Set(context.Context, models.ProductList) {}
func (NoopStore) Invalidate(context.Context) {}
