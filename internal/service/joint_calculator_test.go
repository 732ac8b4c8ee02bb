package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/guttosm/boltjoint-service/internal/joint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lapDesign() joint.Design {
	return joint.Design{
		Type: joint.Lap,
		Parameters: joint.Parameters{
			Diameter:       16,
			HoleDiameter:   18,
			T1:             10,
			T2:             18,
			FactoredLoad:   150,
			BoltUltimate:   400,
			PlateUltimate:  410,
			EdgeDistance:   30,
			Pitch:          40,
			ThreadedPlanes: 1,
		},
	}
}

// countingCache records calls so tests can observe cache use.
type countingCache struct {
	mu    sync.Mutex
	items map[uint64]model.DesignResult
	gets  int
	sets  int
	clear int
}

func newCountingCache() *countingCache {
	return &countingCache{items: map[uint64]model.DesignResult{}}
}

func (c *countingCache) Get(key uint64) (model.DesignResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.items[key]
	return v, ok
}

func (c *countingCache) Set(key uint64, value model.DesignResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.items[key] = value
}

func (c *countingCache) Invalidate(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *countingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear++
	c.items = map[uint64]model.DesignResult{}
}

func (c *countingCache) Stop() {}

type sourceFunc func() (joint.Design, error)

func (f sourceFunc) ToDesign() (joint.Design, error) { return f() }

func designSource(d joint.Design) DesignSource {
	return sourceFunc(func() (joint.Design, error) { return d, nil })
}

func TestNewJointCalculatorService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *JointCalculatorService)
	}{
		{
			name: "defaults",
			validate: func(t *testing.T, s *JointCalculatorService) {
				assert.Nil(t, s.cache)
				assert.Equal(t, DefaultBatchMaxItems, s.batchMaxItems)
				assert.Positive(t, s.batchWorkers)
			},
		},
		{
			name:    "cache option",
			options: []Option{WithCache(100, time.Minute)},
			validate: func(t *testing.T, s *JointCalculatorService) {
				assert.IsType(t, &ttlCache{}, s.cache)
			},
		},
		{
			name:    "sharded cache option",
			options: []Option{WithShardedCache(100, time.Minute, 4)},
			validate: func(t *testing.T, s *JointCalculatorService) {
				assert.IsType(t, &ShardedCache{}, s.cache)
			},
		},
		{
			name:    "zero capacity disables cache",
			options: []Option{WithCache(0, time.Minute), WithShardedCache(0, time.Minute, 4)},
			validate: func(t *testing.T, s *JointCalculatorService) {
				assert.Nil(t, s.cache)
			},
		},
		{
			name:    "batch limits",
			options: []Option{WithBatchLimits(5, 2)},
			validate: func(t *testing.T, s *JointCalculatorService) {
				assert.Equal(t, 5, s.batchMaxItems)
				assert.Equal(t, 2, s.batchWorkers)
			},
		},
		{
			name:    "non-positive batch limits keep defaults",
			options: []Option{WithBatchLimits(0, -1)},
			validate: func(t *testing.T, s *JointCalculatorService) {
				assert.Equal(t, DefaultBatchMaxItems, s.batchMaxItems)
				assert.Positive(t, s.batchWorkers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewJointCalculatorService(tt.options...)
			defer s.Stop()
			tt.validate(t, s)
		})
	}
}

func TestJointCalculatorService_Calculate(t *testing.T) {
	svc := NewJointCalculatorService()

	result, err := svc.Calculate(lapDesign())
	require.NoError(t, err)

	assert.Equal(t, "lap", result.JointType)
	assert.Equal(t, 18, result.HoleDiameter)
	assert.Equal(t, 28.97, result.ShearStrength)
	assert.Equal(t, 64.39, result.BearingStrength)
	assert.Equal(t, 28.97, result.BoltValue)
	assert.Equal(t, "shear", result.GoverningMode)
	assert.Equal(t, 6, result.NumberOfBolts)
	assert.Nil(t, result.PackingFactor)
}

func TestJointCalculatorService_Calculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*joint.Design)
		wantErr error
	}{
		{name: "zero load", mutate: func(d *joint.Design) { d.Parameters.FactoredLoad = 0 }, wantErr: joint.ErrInvalidLoad},
		{name: "no shear planes", mutate: func(d *joint.Design) { d.Parameters.ThreadedPlanes = 0 }, wantErr: joint.ErrDegenerateCapacity},
		{name: "short pitch", mutate: func(d *joint.Design) { d.Parameters.Pitch = 10 }, wantErr: joint.ErrInvalidBearingGeometry},
		{name: "unknown type", mutate: func(d *joint.Design) { d.Type = "tee" }, wantErr: joint.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCountingCache()
			svc := NewJointCalculatorService(WithCacheInterface(c))
			d := lapDesign()
			tt.mutate(&d)

			_, err := svc.Calculate(d)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, c.sets, "failures must not be cached")
		})
	}
}

func TestJointCalculatorService_Calculate_UsesCache(t *testing.T) {
	c := newCountingCache()
	svc := NewJointCalculatorService(WithCacheInterface(c))

	first, err := svc.Calculate(lapDesign())
	require.NoError(t, err)
	second, err := svc.Calculate(lapDesign())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, c.gets)
	assert.Equal(t, 1, c.sets)

	other := lapDesign()
	other.Parameters.FactoredLoad = 300
	res, err := svc.Calculate(other)
	require.NoError(t, err)
	assert.Equal(t, 12, res.NumberOfBolts)
	assert.Equal(t, 2, c.sets)

	svc.InvalidateCache()
	assert.Equal(t, 1, c.clear)
}

func TestJointCalculatorService_CacheMetrics(t *testing.T) {
	svc := NewJointCalculatorService(WithShardedCache(32, time.Minute, 2))
	defer svc.Stop()

	_, err := svc.Calculate(lapDesign())
	require.NoError(t, err)
	_, err = svc.Calculate(lapDesign())
	require.NoError(t, err)

	m, ok := svc.CacheMetrics()
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, 1, m.Size)

	_, ok = NewJointCalculatorService().CacheMetrics()
	assert.False(t, ok)
}

func TestFingerprint(t *testing.T) {
	base := lapDesign()
	assert.Equal(t, fingerprint(base), fingerprint(lapDesign()))

	variants := []func(*joint.Design){
		func(d *joint.Design) { d.Type = joint.SingleCoverButt },
		func(d *joint.Design) { d.Parameters.T1 = 11 },
		func(d *joint.Design) { d.Parameters.ShankPlanes = 1 },
		func(d *joint.Design) { d.CoverThickness = 8 },
		func(d *joint.Design) { d.Packing = &joint.PackingPlate{} },
		func(d *joint.Design) { d.Packing = &joint.PackingPlate{Thickness: 10} },
	}
	seen := map[uint64]bool{fingerprint(base): true}
	for i, mutate := range variants {
		d := lapDesign()
		mutate(&d)
		key := fingerprint(d)
		assert.False(t, seen[key], "variant %d collides", i)
		seen[key] = true
	}
}

func TestJointCalculatorService_CalculateBatch(t *testing.T) {
	badLoad := lapDesign()
	badLoad.Parameters.FactoredLoad = -1

	sources := []DesignSource{
		designSource(lapDesign()),
		designSource(badLoad),
		sourceFunc(func() (joint.Design, error) {
			_, err := joint.HoleDiameter(15)
			return joint.Design{}, err
		}),
		designSource(lapDesign()),
	}

	svc := NewJointCalculatorService(WithBatchLimits(10, 2))
	res, err := svc.CalculateBatch(context.Background(), sources)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Items, 4)

	for i, item := range res.Items {
		assert.Equal(t, i, item.Index)
	}
	require.NotNil(t, res.Items[0].Result)
	assert.Equal(t, 6, res.Items[0].Result.NumberOfBolts)
	assert.Equal(t, "invalid_load", res.Items[1].ErrorKind)
	assert.NotEmpty(t, res.Items[1].Error)
	assert.Equal(t, "invalid_geometry", res.Items[2].ErrorKind)
	assert.Nil(t, res.Items[2].Result)
	require.NotNil(t, res.Items[3].Result)
}

func TestJointCalculatorService_CalculateBatch_Limits(t *testing.T) {
	svc := NewJointCalculatorService(WithBatchLimits(2, 1))

	_, err := svc.CalculateBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	sources := []DesignSource{designSource(lapDesign()), designSource(lapDesign()), designSource(lapDesign())}
	_, err = svc.CalculateBatch(context.Background(), sources)
	assert.ErrorIs(t, err, ErrBatchTooLarge)
}

func TestJointCalculatorService_CalculateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewJointCalculatorService()
	_, err := svc.CalculateBatch(ctx, []DesignSource{designSource(lapDesign())})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestJointCalculatorService_CalculateBatch_MatchesSingle(t *testing.T) {
	svc := NewJointCalculatorService(WithBatchLimits(50, 4))

	var sources []DesignSource
	var expected []model.DesignResult
	for load := 50.0; load <= 1000; load += 50 {
		d := lapDesign()
		d.Parameters.FactoredLoad = load
		sources = append(sources, designSource(d))
		r, err := svc.Calculate(d)
		require.NoError(t, err)
		expected = append(expected, r)
	}

	res, err := svc.CalculateBatch(context.Background(), sources)
	require.NoError(t, err)
	require.Equal(t, len(expected), res.Succeeded)
	for i, item := range res.Items {
		require.NotNil(t, item.Result)
		assert.Equal(t, expected[i], *item.Result)
	}
}

func TestJointCalculatorService_ResolveGeometry(t *testing.T) {
	svc := NewJointCalculatorService()

	g, err := svc.ResolveGeometry(16, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, model.GeometryResult{BoltDiameter: 16, HoleDiameter: 18, EdgeDistance: 27, Pitch: 40}, g)

	g, err = svc.ResolveGeometry(20, 35, 0)
	require.NoError(t, err)
	assert.Equal(t, 35.0, g.EdgeDistance)
	assert.Equal(t, 50.0, g.Pitch)

	_, err = svc.ResolveGeometry(23, 0, 0)
	assert.ErrorIs(t, err, joint.ErrInvalidGeometry)
}
