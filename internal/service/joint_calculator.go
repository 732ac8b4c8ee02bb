package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/guttosm/boltjoint-service/internal/joint"
	"github.com/guttosm/boltjoint-service/internal/metrics"
	"github.com/guttosm/boltjoint-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchMaxItems caps the number of designs accepted in one batch.
	DefaultBatchMaxItems = 100

	statusSuccess = "success"
)

var (
	// ErrEmptyBatch is returned when a batch contains no designs.
	ErrEmptyBatch = errors.New("batch contains no designs")
	// ErrBatchTooLarge is returned when a batch exceeds the configured maximum.
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)

// DesignSource produces a joint design, failing when its inputs cannot be
// resolved. Request DTOs implement it.
type DesignSource interface {
	ToDesign() (joint.Design, error)
}

// JointCalculator defines the joint design operations exposed to the HTTP layer.
type JointCalculator interface {
	Calculate(design joint.Design) (model.DesignResult, error)
	// CalculateBatch evaluates every source and reports failures per item.
	// It only fails as a whole for an empty or oversized batch or a cancelled context.
	CalculateBatch(ctx context.Context, sources []DesignSource) (model.BatchResult, error)
	ResolveGeometry(d int, edgeDistance, pitch float64) (model.GeometryResult, error)
	InvalidateCache()
}

// Option configures a JointCalculatorService.
type Option func(*JointCalculatorService)

// JointCalculatorService evaluates bolted joints with an optional result cache
// and a bounded worker pool for batches.
type JointCalculatorService struct {
	cache         cache.Cache
	batchMaxItems int
	batchWorkers  int
}

// NewJointCalculatorService creates a JointCalculatorService with the given options.
func NewJointCalculatorService(opts ...Option) *JointCalculatorService {
	s := &JointCalculatorService{
		batchMaxItems: DefaultBatchMaxItems,
		batchWorkers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables an unsharded result cache.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *JointCalculatorService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithShardedCache enables a sharded result cache for high concurrency.
func WithShardedCache(capacity int, ttl time.Duration, shards int) Option {
	return func(s *JointCalculatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *JointCalculatorService) {
		s.cache = c
	}
}

// WithBatchLimits sets the maximum batch size and worker count.
// Non-positive values keep the defaults.
func WithBatchLimits(maxItems, workers int) Option {
	return func(s *JointCalculatorService) {
		if maxItems > 0 {
			s.batchMaxItems = maxItems
		}
		if workers > 0 {
			s.batchWorkers = workers
		}
	}
}

// Calculate evaluates a single design. Only successful results are cached.
func (s *JointCalculatorService) Calculate(design joint.Design) (model.DesignResult, error) {
	var key uint64
	if s.cache != nil {
		key = fingerprint(design)
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	start := time.Now()
	res, err := joint.Evaluate(design)
	elapsed := time.Since(start)
	if err != nil {
		kind := joint.Kind(err)
		if kind == "" {
			kind = "error"
		}
		metrics.RecordEvaluation(string(design.Type), elapsed, kind)
		log.Warn().
			Err(err).
			Str("joint_type", string(design.Type)).
			Str("error_kind", kind).
			Int("bolt_diameter", design.Parameters.Diameter).
			Float64("factored_load", design.Parameters.FactoredLoad).
			Msg("joint evaluation failed")
		return model.DesignResult{}, err
	}

	result := model.NewDesignResult(design, res)
	metrics.RecordEvaluation(string(design.Type), elapsed, statusSuccess)
	metrics.RecordBolts(result.JointType, result.GoverningMode, result.NumberOfBolts)

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return result, nil
}

// CalculateBatch evaluates sources concurrently with at most batchWorkers in
// flight. Items keep the order of sources.
func (s *JointCalculatorService) CalculateBatch(ctx context.Context, sources []DesignSource) (model.BatchResult, error) {
	if len(sources) == 0 {
		return model.BatchResult{}, ErrEmptyBatch
	}
	if len(sources) > s.batchMaxItems {
		return model.BatchResult{}, fmt.Errorf("%w: %d designs, limit %d", ErrBatchTooLarge, len(sources), s.batchMaxItems)
	}
	metrics.RecordBatch(len(sources))

	items := make([]model.BatchItem, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i, src := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = s.evaluateItem(i, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.BatchResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.BatchResult{}, err
	}

	out := model.BatchResult{Total: len(items), Items: items}
	for _, item := range items {
		if item.Result != nil {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	return out, nil
}

func (s *JointCalculatorService) evaluateItem(index int, src DesignSource) model.BatchItem {
	item := model.BatchItem{Index: index}

	design, err := src.ToDesign()
	if err == nil {
		var result model.DesignResult
		result, err = s.Calculate(design)
		if err == nil {
			item.Result = &result
			return item
		}
	}

	item.Error = err.Error()
	item.ErrorKind = joint.Kind(err)
	return item
}

// ResolveGeometry returns the hole diameter and the edge distance and pitch,
// defaulting those passed as zero.
func (s *JointCalculatorService) ResolveGeometry(d int, edgeDistance, pitch float64) (model.GeometryResult, error) {
	g, err := joint.ResolveGeometry(d, edgeDistance, pitch)
	if err != nil {
		return model.GeometryResult{}, err
	}
	return model.NewGeometryResult(g), nil
}

// InvalidateCache clears the result cache.
func (s *JointCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// CacheMetrics reports cache statistics when the cache exposes them.
func (s *JointCalculatorService) CacheMetrics() (cache.Metrics, bool) {
	if c, ok := s.cache.(cache.CacheWithMetrics); ok {
		return c.Metrics(), true
	}
	return cache.Metrics{}, false
}

// Stop releases the cache's background resources.
func (s *JointCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// fingerprint hashes every input that affects the result.
func fingerprint(d joint.Design) uint64 {
	p := d.Parameters
	buf := make([]byte, 0, 128)
	buf = append(buf, string(d.Type)...)
	buf = append(buf, 0)
	for _, v := range []int{p.Diameter, p.HoleDiameter, p.ThreadedPlanes, p.ShankPlanes} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
	}
	for _, v := range []float64{p.T1, p.T2, p.FactoredLoad, p.BoltUltimate, p.PlateUltimate, p.EdgeDistance, p.Pitch, d.CoverThickness} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	if d.Packing != nil {
		buf = append(buf, 1)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(d.Packing.Thickness))
	} else {
		buf = append(buf, 0)
	}
	return xxhash.Sum64(buf)
}
