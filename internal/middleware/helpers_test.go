package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/boltjoint-service/internal/domain/model"
)

// recordingLogs is a LoggingService that keeps written entries in memory.
type recordingLogs struct {
	mu      sync.Mutex
	entries []*model.LogEntry
	calls   int
	err     error
	delay   time.Duration
}

func (r *recordingLogs) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return r.CreateLogs(ctx, []*model.LogEntry{entry})
}

func (r *recordingLogs) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *recordingLogs) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}

func (r *recordingLogs) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func (r *recordingLogs) snapshot() []*model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.LogEntry(nil), r.entries...)
}

// captureSink is a LogSink that stores entries synchronously.
type captureSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *captureSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *captureSink) last() *model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}
