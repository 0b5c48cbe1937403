package activity

import (
	"context"
	"sync"

	"jewelry-inventory-api/internal/model"
)

// DefaultMemorySize is used when a non-positive capacity is given.
const DefaultMemorySize = 100

// MemorySink keeps the most recent reports in a fixed-size ring.
// Use this for single-instance deployments or when no external sink is
// configured.
type MemorySink struct {
	mu      sync.RWMutex
	entries []model.ActivityReport
	next    int
	full    bool
	total   int64
}

// NewMemorySink creates a ring holding up to size reports.
func NewMemorySink(size int) *MemorySink {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &MemorySink{
		entries: make([]model.ActivityReport, size),
	}
}

// Name implements Sink.
func (s *MemorySink) Name() string { return "memory" }

// Record implements Sink. The oldest report is overwritten once the ring
// is full.
func (s *MemorySink) Record(_ context.Context, report model.ActivityReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = copyReport(report)
	s.next = (s.next + 1) % len(s.entries)
	if s.next == 0 {
		s.full = true
	}
	s.total++
	return nil
}

// Recent returns up to n reports, newest first. n <= 0 returns everything
// held.
func (s *MemorySink) Recent(n int) []model.ActivityReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	held := s.lenLocked()
	if n <= 0 || n > held {
		n = held
	}

	out := make([]model.ActivityReport, 0, n)
	idx := s.next
	for i := 0; i < n; i++ {
		idx = (idx - 1 + len(s.entries)) % len(s.entries)
		out = append(out, copyReport(s.entries[idx]))
	}
	return out
}

// Len returns the number of reports currently held.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lenLocked()
}

// Total returns the number of reports recorded since start.
func (s *MemorySink) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *MemorySink) lenLocked() int {
	if s.full {
		return len(s.entries)
	}
	return s.next
}

// copyReport detaches the query map so callers cannot mutate held reports.
func copyReport(r model.ActivityReport) model.ActivityReport {
	if r.Query == nil {
		return r
	}
	q := make(map[string][]string, len(r.Query))
	for k, v := range r.Query {
		q[k] = append([]string(nil), v...)
	}
	r.Query = q
	return r
}
