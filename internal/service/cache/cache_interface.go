// Package cache defines the result-cache contract for the packing service.
package cache

import "github.com/guttosm/boxpack-service/internal/domain/model"

// Cache stores packing results keyed by a request digest.
type Cache interface {
	Get(key string) (*model.PackingResult, bool)
	Set(key string, value *model.PackingResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
