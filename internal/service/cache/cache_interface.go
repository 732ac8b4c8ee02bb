// Package cache defines the result cache contract used by the joint calculator.
package cache

import "github.com/guttosm/boltjoint-service/internal/domain/model"

// Cache stores design results keyed by a 64-bit design fingerprint.
type Cache interface {
	Get(key uint64) (model.DesignResult, bool)
	Set(key uint64, value model.DesignResult)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// HitRatio returns hits over lookups, or 0 before the first lookup.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
