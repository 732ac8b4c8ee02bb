package middleware

import (
	"sync"
	"time"
)

// storedResponse is a completed response kept for replay.
type storedResponse struct {
	status      int
	contentType string
	body        []byte
	expiresAt   time.Time
}

// IdempotencyStore remembers responses by request fingerprint and tracks
// requests still being processed.
type IdempotencyStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	done     map[uint64]*storedResponse
	inFlight map[uint64]struct{}
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyStore keeps responses for ttl and purges expired ones every minute.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	s := &IdempotencyStore{
		ttl:      ttl,
		done:     make(map[uint64]*storedResponse),
		inFlight: make(map[uint64]struct{}),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go s.janitor()
	return s
}

// begin returns a stored response for key, or reports that key is in flight.
// When neither holds, key is marked in flight and the caller must finish it
// with complete or abandon.
func (s *IdempotencyStore) begin(key uint64) (*storedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resp, ok := s.done[key]; ok {
		if s.now().Before(resp.expiresAt) {
			return resp, false
		}
		delete(s.done, key)
	}
	if _, ok := s.inFlight[key]; ok {
		return nil, true
	}
	s.inFlight[key] = struct{}{}
	return nil, false
}

func (s *IdempotencyStore) complete(key uint64, resp *storedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, key)
	resp.expiresAt = s.now().Add(s.ttl)
	s.done[key] = resp
}

func (s *IdempotencyStore) abandon(key uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

// Len returns the number of stored responses.
func (s *IdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.done)
}

func (s *IdempotencyStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *IdempotencyStore) purgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, resp := range s.done {
		if !now.Before(resp.expiresAt) {
			delete(s.done, key)
		}
	}
}

// Stop ends the purge goroutine. Safe to call more than once.
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
