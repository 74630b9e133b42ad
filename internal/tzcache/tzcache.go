// Package tzcache keeps the site-to-timezone map in an in-process KV cache.
// The cache is a derived view of the timezone table and is rebuilt on a miss.
package tzcache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/metrics"
	"site-uptime-backend/internal/store"
)

// CacheKey is the single key the whole map is stored under.
const CacheKey = "site_timezones"

var rebuildsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubCache,
		Name:      "rebuilds_total",
		Help:      "Number of timezone cache rebuilds by outcome.",
	},
	[]string{"outcome"},
)

// Cache serves site timezones from memory.
type Cache struct {
	store store.TimezoneStore
	kv    *cache.Cache
	ttl   time.Duration
	log   logger.Logger
}

// New creates a cache over s. A ttl of zero keeps the map until it is replaced.
func New(s store.TimezoneStore, ttl time.Duration, log logger.Logger) *Cache {
	exp := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		exp = ttl
		cleanup = 2 * ttl
	}
	return &Cache{
		store: s,
		kv:    cache.New(exp, cleanup),
		ttl:   exp,
		log:   log,
	}
}

// GetAll returns site id -> zone name, rebuilding the cache on a miss.
// Callers must not modify the returned map.
func (c *Cache) GetAll(ctx context.Context) (map[int64]string, error) {
	if v, ok := c.kv.Get(CacheKey); ok {
		if zones, ok := v.(map[int64]string); ok {
			return zones, nil
		}
	}
	c.log.Debug().Msg("timezone cache miss")
	return c.Rebuild(ctx)
}

// Rebuild reloads the map from the store and replaces the cached copy.
func (c *Cache) Rebuild(ctx context.Context) (map[int64]string, error) {
	rows, err := c.store.ListTimezones(ctx)
	if err != nil {
		rebuildsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	zones := make(map[int64]string, len(rows))
	for _, r := range rows {
		zones[r.SiteID] = r.Timezone
	}
	c.kv.Set(CacheKey, zones, c.ttl)
	rebuildsTotal.WithLabelValues("ok").Inc()

	c.log.Info().Int("sites", len(zones)).Msg("timezone cache rebuilt")
	return zones, nil
}

// Invalidate drops the cached map.
func (c *Cache) Invalidate() {
	c.kv.Delete(CacheKey)
}
