// Package offers keeps the outstanding offers of running distributions.
package offers

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"drillflow-dispatch/internal/domain"
)

// Memory is an in-process offer store keyed by order and contractor.
// It is created per engine instance and passed in explicitly.
type Memory struct {
	mu      sync.Mutex
	byOrder map[string]map[string]domain.Offer
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{byOrder: make(map[string]map[string]domain.Offer)}
}

// Put records offers, replacing any previous offer for the same pair.
func (m *Memory) Put(_ context.Context, offers []domain.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range offers {
		set, ok := m.byOrder[o.OrderID]
		if !ok {
			set = make(map[string]domain.Offer)
			m.byOrder[o.OrderID] = set
		}
		set[o.ContractorID] = o
	}
	return nil
}

// Get returns the outstanding offer for the pair, if any.
func (m *Memory) Get(_ context.Context, orderID, contractorID string) (domain.Offer, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.byOrder[orderID][contractorID]
	return o, ok, nil
}

// MarkDelivered flags the pair's offer as acknowledged by the notifier.
// It reports false when the offer is no longer outstanding.
func (m *Memory) MarkDelivered(_ context.Context, orderID, contractorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.byOrder[orderID][contractorID]
	if !ok {
		return false, nil
	}
	o.Delivered = true
	m.byOrder[orderID][contractorID] = o
	return true, nil
}

// Remove drops one offer and reports whether it existed.
func (m *Memory) Remove(_ context.Context, orderID, contractorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.byOrder[orderID]
	if !ok {
		return false, nil
	}
	if _, ok := set[contractorID]; !ok {
		return false, nil
	}
	delete(set, contractorID)
	if len(set) == 0 {
		delete(m.byOrder, orderID)
	}
	return true, nil
}

// RemoveAll drops every offer of the order and returns them ordered by rank.
func (m *Memory) RemoveAll(_ context.Context, orderID string) ([]domain.Offer, error) {
	m.mu.Lock()
	set := m.byOrder[orderID]
	delete(m.byOrder, orderID)
	m.mu.Unlock()

	return sorted(set), nil
}

// List returns the outstanding offers of the order ordered by rank.
func (m *Memory) List(_ context.Context, orderID string) ([]domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sorted(m.byOrder[orderID]), nil
}

// Expired returns every offer that expired before now, ordered by order id
// and rank. Offers stay in the store; callers remove them under their own
// per-order serialization.
func (m *Memory) Expired(_ context.Context, now time.Time) ([]domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Offer
	for _, set := range m.byOrder {
		for _, o := range set {
			if o.Expired(now) {
				out = append(out, o)
			}
		}
	}
	slices.SortFunc(out, func(a, b domain.Offer) int {
		if c := strings.Compare(a.OrderID, b.OrderID); c != 0 {
			return c
		}
		return a.Rank - b.Rank
	})
	return out, nil
}

func sorted(set map[string]domain.Offer) []domain.Offer {
	out := make([]domain.Offer, 0, len(set))
	for _, o := range set {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b domain.Offer) int { return a.Rank - b.Rank })
	return out
}
