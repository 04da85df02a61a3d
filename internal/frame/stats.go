package frame

import (
	"sync"
	"time"
)

// Stats records the most recent paint durations in a ring buffer so hosts
// can show how long the aurora takes to draw.
type Stats struct {
	buffer    []time.Duration
	nextIndex int
	count     int
	mu        sync.RWMutex
}

// NewStats keeps the last size durations. size < 1 is treated as 1.
func NewStats(size int) *Stats {
	return &Stats{buffer: make([]time.Duration, max(size, 1))}
}

func (s *Stats) Record(d time.Duration) {
	s.mu.Lock()
	s.buffer[s.nextIndex] = d
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.count < len(s.buffer) {
		s.count++
	}
	s.mu.Unlock()
}

// Len is the number of durations held, at most the ring size.
func (s *Stats) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Snapshot returns up to the last n durations, most recent last.
func (s *Stats) Snapshot(n int) []time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n = min(n, s.count)
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	idx := s.nextIndex - n
	if idx < 0 {
		idx += len(s.buffer)
	}
	for i := range out {
		out[i] = s.buffer[idx]
		idx++
		if idx >= len(s.buffer) {
			idx = 0
		}
	}
	return out
}

// Summary returns the mean and worst duration held.
func (s *Stats) Summary() (avg, worst time.Duration) {
	recent := s.Snapshot(len(s.buffer))
	if len(recent) == 0 {
		return 0, 0
	}
	var total time.Duration
	for _, d := range recent {
		total += d
		worst = max(worst, d)
	}
	return total / time.Duration(len(recent)), worst
}
