package socrata

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
)

// CachedFinder wraps a Finder with in-memory LRU caches for searches and
// identifier lookups. Cached slices are shared between callers and must be
// treated as read-only.
type CachedFinder struct {
	inner    domain.Finder
	searches *lru.Cache[string, []domain.RawRecord]
	records  *lru.Cache[string, domain.RawRecord]
	metrics  *observability.Metrics
}

// NewCachedFinder creates a cache decorator holding up to maxEntries results
// of each kind.
func NewCachedFinder(inner domain.Finder, maxEntries int, metrics *observability.Metrics) (*CachedFinder, error) {
	searches, err := lru.New[string, []domain.RawRecord](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create search cache: %w", err)
	}
	records, err := lru.New[string, domain.RawRecord](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create record cache: %w", err)
	}
	return &CachedFinder{
		inner:    inner,
		searches: searches,
		records:  records,
		metrics:  metrics,
	}, nil
}

func (c *CachedFinder) FindFacilities(ctx context.Context, cat domain.Category, location string) ([]domain.RawRecord, error) {
	key := searchKey(cat, location)
	if records, ok := c.searches.Get(key); ok {
		c.metrics.CacheLookups.WithLabelValues("search", "hit").Inc()
		return records, nil
	}
	c.metrics.CacheLookups.WithLabelValues("search", "miss").Inc()

	records, err := c.inner.FindFacilities(ctx, cat, location)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty results so a facility added upstream shows up on the next search.
	if len(records) > 0 {
		c.searches.Add(key, records)
	}
	return records, nil
}

func (c *CachedFinder) FindByIdentifier(ctx context.Context, cat domain.Category, id string) (domain.RawRecord, error) {
	key := identifierKey(cat, id)
	if rec, ok := c.records.Get(key); ok {
		c.metrics.CacheLookups.WithLabelValues("identifier", "hit").Inc()
		return rec, nil
	}
	c.metrics.CacheLookups.WithLabelValues("identifier", "miss").Inc()

	rec, err := c.inner.FindByIdentifier(ctx, cat, id)
	if err != nil {
		return nil, err
	}
	c.records.Add(key, rec)
	return rec, nil
}

// searchKey identifies a search by its classified term, so " boston" and
// "BOSTON" share an entry.
func searchKey(cat domain.Category, location string) string {
	term := domain.ClassifyTerm(location)
	return fmt.Sprintf("search:%s|%s|%s", cat.DataSourceKey(), term.Kind, term.Value)
}

func identifierKey(cat domain.Category, id string) string {
	return fmt.Sprintf("id:%s|%s", cat.DataSourceKey(), id)
}
