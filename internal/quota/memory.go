package quota

import (
	"context"
	"hash/fnv"
	"sync"
)

const shardCount = 32

type key struct {
	contractorID string
	day          Day
}

type shard struct {
	mu     sync.Mutex
	counts map[key]int
}

// Memory is an in-process Tracker. Keys are spread over shards so that
// contractors do not contend on a single lock. Old days are never purged.
type Memory struct {
	shards [shardCount]*shard
}

// NewMemory creates an empty in-memory tracker.
func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.shards {
		m.shards[i] = &shard{counts: make(map[key]int)}
	}
	return m
}

func (m *Memory) shardFor(contractorID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contractorID))
	return m.shards[h.Sum32()%shardCount]
}

// Count returns the current counter value.
func (m *Memory) Count(_ context.Context, contractorID string, day Day) (int, error) {
	s := m.shardFor(contractorID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key{contractorID, day}], nil
}

// TryIncrement bumps the counter if it is below limit.
func (m *Memory) TryIncrement(_ context.Context, contractorID string, day Day, limit int) (bool, int, error) {
	s := m.shardFor(contractorID)
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{contractorID, day}
	n := s.counts[k]
	if n >= limit {
		return false, n, nil
	}
	n++
	s.counts[k] = n
	return true, n, nil
}

// Decrement lowers the counter, never below zero.
func (m *Memory) Decrement(_ context.Context, contractorID string, day Day) error {
	s := m.shardFor(contractorID)
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{contractorID, day}
	if n := s.counts[k]; n > 1 {
		s.counts[k] = n - 1
	} else {
		delete(s.counts, k)
	}
	return nil
}

var _ Tracker = (*Memory)(nil)
