package app

import (
	"sync"
	"time"

	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/metrics"
	"github.com/guttosm/boltjoint-service/internal/service"
	"github.com/rs/zerolog/log"
)

// cacheGaugeInterval is how often cache size is exported to Prometheus.
const cacheGaugeInterval = 15 * time.Second

// ServiceComponents holds the joint design services.
type ServiceComponents struct {
	Calculator *service.JointCalculatorService

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// InitializeServices builds the calculator with its result cache and batch limits.
func InitializeServices(cacheCfg config.CacheConfig, batchCfg config.BatchConfig) *ServiceComponents {
	opts := []service.Option{service.WithBatchLimits(batchCfg.MaxItems, batchCfg.Workers)}
	if cacheCfg.Size > 0 {
		opts = append(opts, service.WithShardedCache(cacheCfg.Size, cacheCfg.TTL, cacheCfg.Shards))
	}

	sc := &ServiceComponents{
		Calculator: service.NewJointCalculatorService(opts...),
		stopCh:     make(chan struct{}),
	}

	if _, ok := sc.Calculator.CacheMetrics(); ok {
		sc.wg.Add(1)
		go sc.exportCacheGauges(cacheGaugeInterval)
	}

	log.Info().
		Int("cache_size", cacheCfg.Size).
		Int("cache_shards", cacheCfg.Shards).
		Dur("cache_ttl", cacheCfg.TTL).
		Int("batch_max_items", batchCfg.MaxItems).
		Msg("joint calculator initialized")
	return sc
}

func (sc *ServiceComponents) exportCacheGauges(interval time.Duration) {
	defer sc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sc.updateCacheGauges()
		case <-sc.stopCh:
			return
		}
	}
}

func (sc *ServiceComponents) updateCacheGauges() {
	if m, ok := sc.Calculator.CacheMetrics(); ok {
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}

// Stop ends the gauge exporter and the cache janitors.
func (sc *ServiceComponents) Stop() {
	sc.stopOnce.Do(func() {
		close(sc.stopCh)
		sc.wg.Wait()
		sc.Calculator.Stop()
	})
}
