//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/boltjoint-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLogsRepository struct {
	mock.Mock
}

func (m *mockLogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *mockLogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	docs, _ := args.Get(0).([]*LogEntryDocument)
	return docs, args.Error(1)
}

func (m *mockLogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func newTestBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             "logs-test",
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
	})
}

func TestLogsRepositoryWithCircuitBreaker_PassThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLogsRepository)
	wrapped := NewLogsRepositoryWithCircuitBreaker(repo, newTestBreaker())

	entry := &LogEntryDocument{Message: "ok"}
	docs := []*LogEntryDocument{entry}
	repo.On("Create", ctx, entry).Return(nil)
	repo.On("CreateMany", ctx, docs).Return(nil)
	repo.On("Query", ctx, LogQueryOptions{Level: "info"}).Return(docs, nil)
	repo.On("Count", ctx, LogQueryOptions{Level: "info"}).Return(int64(1), nil)

	require.NoError(t, wrapped.Create(ctx, entry))
	require.NoError(t, wrapped.CreateMany(ctx, docs))
	got, err := wrapped.Query(ctx, LogQueryOptions{Level: "info"})
	require.NoError(t, err)
	assert.Equal(t, docs, got)
	count, err := wrapped.Count(ctx, LogQueryOptions{Level: "info"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	repo.AssertExpectations(t)
}

func TestLogsRepositoryWithCircuitBreaker_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	repo := new(mockLogsRepository)
	cb := newTestBreaker()
	wrapped := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	boom := errors.New("connection refused")
	repo.On("Create", ctx, mock.Anything).Return(boom).Twice()

	assert.ErrorIs(t, wrapped.Create(ctx, &LogEntryDocument{}), boom)
	assert.ErrorIs(t, wrapped.Create(ctx, &LogEntryDocument{}), boom)
	require.True(t, cb.IsOpen())

	assert.NoError(t, wrapped.Create(ctx, &LogEntryDocument{}), "writes are dropped while open")
	assert.NoError(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{}}))

	_, err := wrapped.Query(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	_, err = wrapped.Count(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	assert.Same(t, cb, wrapped.CircuitBreaker())
	repo.AssertNumberOfCalls(t, "Create", 2)
}
