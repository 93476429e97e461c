package distribution_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/matching"
	"drillflow-dispatch/internal/offers"
	"drillflow-dispatch/internal/quota"
	"drillflow-dispatch/internal/service/distribution"
	testlog "drillflow-dispatch/internal/testutil"
)

var t0 = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type orderStore struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	// beforeSave runs inside SaveOrder before the version check.
	beforeSave func(o *domain.Order) error
}

func newOrderStore(orders ...domain.Order) *orderStore {
	s := &orderStore{orders: make(map[string]domain.Order)}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *orderStore) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &o, nil
}

func (s *orderStore) SaveOrder(_ context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.beforeSave != nil {
		if err := s.beforeSave(o); err != nil {
			return err
		}
	}
	cur, ok := s.orders[o.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	if cur.Version != o.Version {
		return apperr.ErrConflict
	}
	o.Version++
	s.orders[o.ID] = *o
	return nil
}

func (s *orderStore) get(t *testing.T, id string) domain.Order {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	require.True(t, ok, "order %s", id)
	return o
}

// bump simulates a write by another instance.
func (s *orderStore) bump(id string, status domain.OrderStatus) {
	o := s.orders[id]
	o.Status = status
	o.Version++
	s.orders[id] = o
}

type contractorStore struct {
	mu      sync.Mutex
	m       map[string]domain.Contractor
	saveErr error
}

func newContractorStore(cs ...domain.Contractor) *contractorStore {
	s := &contractorStore{m: make(map[string]domain.Contractor)}
	for _, c := range cs {
		s.m[c.ID] = c
	}
	return s
}

func (s *contractorStore) GetContractor(_ context.Context, id string) (*domain.Contractor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.m[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &c, nil
}

func (s *contractorStore) ListActiveBySpecialization(_ context.Context, spec domain.Specialization) ([]domain.Contractor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Contractor
	for _, c := range s.m {
		if c.Status == domain.ContractorActive && c.Specialization.Matches(spec) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *contractorStore) SaveContractor(_ context.Context, c *domain.Contractor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.m[c.ID] = *c
	return nil
}

func (s *contractorStore) failSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *contractorStore) get(id string) domain.Contractor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[id]
}

type outcomeCall struct {
	Party   domain.Party
	OrderID string
	Outcome domain.Outcome
}

type recordingNotifier struct {
	mu       sync.Mutex
	offers   []domain.Offer
	outcomes []outcomeCall
	failFor  map[string]bool
}

func (n *recordingNotifier) OfferOrder(_ context.Context, c domain.Contractor, _ domain.Order, offer domain.Offer) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failFor[c.ID] {
		return fmt.Errorf("deliver to %s: %w", c.ID, errors.New("chat unreachable"))
	}
	n.offers = append(n.offers, offer)
	return nil
}

func (n *recordingNotifier) NotifyOutcome(_ context.Context, p domain.Party, o domain.Order, outcome domain.Outcome) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outcomes = append(n.outcomes, outcomeCall{Party: p, OrderID: o.ID, Outcome: outcome})
	return nil
}

func (n *recordingNotifier) sentOffers() []domain.Offer {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Offer(nil), n.offers...)
}

// recipients returns who got outcome, as "role:id".
func (n *recordingNotifier) recipients(outcome domain.Outcome) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, c := range n.outcomes {
		if c.Outcome == outcome {
			out = append(out, string(c.Party.Role)+":"+c.Party.ID)
		}
	}
	return out
}

type fixture struct {
	engine      *distribution.Engine
	orders      *orderStore
	contractors *contractorStore
	offers      *offers.Memory
	quota       *quota.Memory
	notifier    *recordingNotifier
	clock       *fakeClock
	log         *testlog.Recorder
}

func newFixture(t *testing.T, order domain.Order, contractors ...domain.Contractor) *fixture {
	t.Helper()

	f := &fixture{
		orders:      newOrderStore(order),
		contractors: newContractorStore(contractors...),
		offers:      offers.NewMemory(),
		quota:       quota.NewMemory(),
		notifier:    &recordingNotifier{failFor: map[string]bool{}},
		clock:       &fakeClock{now: t0},
		log:         testlog.New(),
	}
	f.engine = distribution.NewEngine(
		distribution.Deps{
			Orders:      f.orders,
			Contractors: f.contractors,
			Offers:      f.offers,
			Quota:       f.quota,
			Notifier:    f.notifier,
			Clock:       f.clock.Now,
		},
		matching.Policy{Mode: matching.RankByRating},
		distribution.Config{OfferTTL: 300 * time.Second, DispatchTimeout: time.Second},
		f.log.Logger(),
	)
	return f
}

func (f *fixture) respond(t *testing.T, contractorID string, kind domain.ResponseKind) domain.ResponseOutcome {
	t.Helper()
	out, err := f.engine.HandleResponse(context.Background(), domain.Response{
		OrderID:      "o1",
		ContractorID: contractorID,
		Kind:         kind,
	})
	require.NoError(t, err)
	return out
}

func newOrder(spec domain.Specialization) domain.Order {
	return domain.Order{
		ID:             "o1",
		CustomerID:     "cust-1",
		Title:          "Well 40m",
		Specialization: spec,
		Location:       &domain.Location{Lat: 55.75, Lon: 37.61},
		Status:         domain.OrderCreated,
		CreatedAt:      t0,
		UpdatedAt:      t0,
	}
}

func activeContractor(id string, rating float64) domain.Contractor {
	return domain.Contractor{
		ID:             id,
		UserID:         "chat-" + id,
		Name:           "Contractor " + id,
		Specialization: domain.SpecDrilling,
		WorkRadiusKm:   50,
		Location:       &domain.Location{Lat: 55.76, Lon: 37.62},
		Status:         domain.ContractorActive,
		Rating:         rating,
	}
}
