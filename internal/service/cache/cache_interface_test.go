//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type stubCache struct {
	items map[uint64]model.DesignResult
}

func (s *stubCache) Get(key uint64) (model.DesignResult, bool) {
	v, ok := s.items[key]
	return v, ok
}

func (s *stubCache) Set(key uint64, value model.DesignResult) { s.items[key] = value }
func (s *stubCache) Invalidate(key uint64)                    { delete(s.items, key) }
func (s *stubCache) Clear()                                   { s.items = map[uint64]model.DesignResult{} }
func (s *stubCache) Stop()                                    {}
func (s *stubCache) Metrics() Metrics                         { return Metrics{Size: len(s.items)} }

func TestCacheWithMetrics_Contract(t *testing.T) {
	var c CacheWithMetrics = &stubCache{items: map[uint64]model.DesignResult{}}

	_, found := c.Get(42)
	assert.False(t, found)

	c.Set(42, model.DesignResult{NumberOfBolts: 6})
	v, found := c.Get(42)
	assert.True(t, found)
	assert.Equal(t, 6, v.NumberOfBolts)
	assert.Equal(t, 1, c.Metrics().Size)

	c.Invalidate(42)
	_, found = c.Get(42)
	assert.False(t, found)
}

func TestMetrics_HitRatio(t *testing.T) {
	tests := []struct {
		name     string
		metrics  Metrics
		expected float64
	}{
		{name: "no lookups", metrics: Metrics{}, expected: 0},
		{name: "all hits", metrics: Metrics{Hits: 4}, expected: 1},
		{name: "mixed", metrics: Metrics{Hits: 3, Misses: 1}, expected: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.metrics.HitRatio(), 1e-12)
		})
	}
}
