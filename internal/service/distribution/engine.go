// Package distribution offers new orders to eligible contractors and settles
// the race between their answers.
package distribution

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
	"drillflow-dispatch/internal/matching"
	"drillflow-dispatch/internal/quota"
)

// Default engine settings.
const (
	DefaultOfferTTL            = 300 * time.Second
	DefaultDispatchTimeout     = 5 * time.Second
	DefaultDispatchConcurrency = 8
	DefaultOperationTimeout    = 3 * time.Second
)

// Config tunes the engine.
type Config struct {
	OfferTTL            time.Duration
	DispatchTimeout     time.Duration
	DispatchConcurrency int
	OperationTimeout    time.Duration
	// TimeZone decides where a quota day starts. Nil means UTC.
	TimeZone *time.Location
}

func (c Config) withDefaults() Config {
	if c.OfferTTL <= 0 {
		c.OfferTTL = DefaultOfferTTL
	}
	if c.DispatchTimeout <= 0 {
		c.DispatchTimeout = DefaultDispatchTimeout
	}
	if c.DispatchConcurrency <= 0 {
		c.DispatchConcurrency = DefaultDispatchConcurrency
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = DefaultOperationTimeout
	}
	if c.TimeZone == nil {
		c.TimeZone = time.UTC
	}
	return c
}

// Deps are the collaborators of the engine. Metrics and Clock are optional.
type Deps struct {
	Orders      OrderRepository
	Contractors ContractorRepository
	Offers      OfferStore
	Quota       QuotaTracker
	Notifier    Notifier
	Metrics     Metrics
	Clock       func() time.Time
}

// Engine runs distribution for many orders at once. Work on one order is
// serialized by a per-order lock; the notifier is always called without it.
type Engine struct {
	orders      OrderRepository
	contractors ContractorRepository
	offers      OfferStore
	quota       QuotaTracker
	notifier    Notifier
	metrics     Metrics

	policy matching.Policy
	cfg    Config
	locks  *keyedMutex
	logger logx.Logger
	now    func() time.Time
}

// NewEngine wires an engine.
func NewEngine(deps Deps, policy matching.Policy, cfg Config, logger logx.Logger) *Engine {
	if logger == nil {
		logger = logx.Nop()
	}
	e := &Engine{
		orders:      deps.Orders,
		contractors: deps.Contractors,
		offers:      deps.Offers,
		quota:       deps.Quota,
		notifier:    deps.Notifier,
		metrics:     deps.Metrics,
		policy:      policy,
		cfg:         cfg.withDefaults(),
		locks:       newKeyedMutex(),
		logger:      logger,
		now:         deps.Clock,
	}
	if e.metrics == nil {
		e.metrics = nopMetrics{}
	}
	if e.now == nil {
		e.now = func() time.Time { return time.Now().UTC() }
	}
	return e
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.OperationTimeout)
}

func (e *Engine) day(t time.Time) quota.Day {
	return quota.DayOf(t, e.cfg.TimeZone)
}

// run is the outcome of the locked planning step of Distribute.
type run struct {
	order      domain.Order
	candidates []matching.Candidate
	offers     []domain.Offer
}

// Distribute starts a distribution run for a created order: every eligible
// contractor gets an offer at once. It returns after each offer was either
// acknowledged by the notifier or dropped as undeliverable.
func (e *Engine) Distribute(ctx context.Context, orderID string) (domain.RunResult, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return domain.RunResult{}, err
	}
	res := domain.RunResult{OrderID: orderID}

	r, err := e.plan(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperr.ErrNoEligibleContractors) && r != nil {
			e.metrics.RunFinished(domain.OutcomeUndistributed)
			e.broadcast(ctx, r.order, domain.OutcomeUndistributed, customer(r.order))
		}
		return res, err
	}

	res.Started = true
	res.Offered = len(r.offers)
	e.metrics.RunStarted(len(r.offers))
	e.logger.Info("distribution started",
		logx.String("event", "distribution_started"),
		logx.String("order_id", orderID),
		logx.Int("candidates", len(r.offers)),
	)

	delivered, failed := e.dispatch(ctx, r)
	res.Delivered = delivered
	res.Failed = failed

	e.logger.Info("offers dispatched",
		logx.String("event", "offers_dispatched"),
		logx.String("order_id", orderID),
		logx.Int("delivered", delivered),
		logx.Int("failed", failed),
	)
	return res, nil
}

func (e *Engine) plan(ctx context.Context, orderID string) (*run, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	unlock := e.locks.Lock(orderID)
	defer unlock()

	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order.Status != domain.OrderCreated {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, apperr.ErrConflict)
	}

	now := e.now()
	pending, err := e.dropStale(ctx, orderID, now)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, fmt.Errorf("order %s already has %d outstanding offers: %w", orderID, pending, apperr.ErrConflict)
	}

	contractors, err := e.contractors.ListActiveBySpecialization(ctx, order.Specialization)
	if err != nil {
		return nil, fmt.Errorf("list contractors for %s: %w", order.Specialization, err)
	}

	eligible, err := e.policy.Eligible(ctx, order, contractors, e.quota, e.day(now))
	if err != nil {
		return nil, err
	}
	ranked := e.policy.Rank(eligible)
	if len(ranked) == 0 {
		e.logger.Info("no eligible contractors",
			logx.String("event", "order_undistributed"),
			logx.String("order_id", orderID),
			logx.Int("considered", len(contractors)),
		)
		return &run{order: *order}, apperr.ErrNoEligibleContractors
	}

	offers := make([]domain.Offer, len(ranked))
	for i, c := range ranked {
		offers[i] = domain.Offer{
			ID:           uuid.NewString(),
			OrderID:      orderID,
			ContractorID: c.Contractor.ID,
			Rank:         i,
			DistanceKm:   c.DistanceKm,
			CreatedAt:    now,
			ExpiresAt:    now.Add(e.cfg.OfferTTL),
		}
	}
	if err := e.offers.Put(ctx, offers); err != nil {
		return nil, fmt.Errorf("record offers of %s: %w", orderID, err)
	}

	return &run{order: *order, candidates: ranked, offers: offers}, nil
}

// dropStale removes offers of orderID that expired but were not swept yet and
// returns how many are still live. Caller holds the order lock.
func (e *Engine) dropStale(ctx context.Context, orderID string, now time.Time) (int, error) {
	offers, err := e.offers.List(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("list offers of %s: %w", orderID, err)
	}
	pending, dropped := 0, 0
	for _, o := range offers {
		if !o.Expired(now) {
			pending++
			continue
		}
		ok, err := e.offers.Remove(ctx, orderID, o.ContractorID)
		if err != nil {
			return 0, fmt.Errorf("drop expired offer of %s: %w", orderID, err)
		}
		if ok {
			dropped++
		}
	}
	if dropped > 0 {
		e.metrics.OffersExpired(dropped)
	}
	return pending, nil
}

// dispatch sends the offers concurrently. A failed delivery counts as an
// immediate decline; nothing is retried within the run.
func (e *Engine) dispatch(ctx context.Context, r *run) (int, int) {
	var delivered, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(e.cfg.DispatchConcurrency)
	for i := range r.offers {
		offer := r.offers[i]
		contractor := r.candidates[i].Contractor
		g.Go(func() error {
			dctx, cancel := context.WithTimeout(ctx, e.cfg.DispatchTimeout)
			err := e.notifier.OfferOrder(dctx, contractor, r.order, offer)
			cancel()

			if err != nil {
				failed.Add(1)
				e.metrics.OfferDispatched(false)
				e.logger.Warn("offer dispatch failed",
					logx.String("event", "offer_dispatch_failed"),
					logx.String("order_id", offer.OrderID),
					logx.String("contractor_id", offer.ContractorID),
					logx.Err(err),
				)
				e.dropOffer(ctx, offer)
				return nil
			}

			delivered.Add(1)
			e.metrics.OfferDispatched(true)
			if _, err := e.offers.MarkDelivered(ctx, offer.OrderID, offer.ContractorID); err != nil {
				e.logger.Warn("mark offer delivered",
					logx.String("order_id", offer.OrderID),
					logx.String("contractor_id", offer.ContractorID),
					logx.Err(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(delivered.Load()), int(failed.Load())
}

// dropOffer withdraws an undeliverable offer and ends the run when it was the last one.
func (e *Engine) dropOffer(ctx context.Context, offer domain.Offer) {
	order, exhausted, err := e.removeOffer(ctx, offer)
	if err != nil {
		e.logger.Error("drop undelivered offer",
			logx.String("order_id", offer.OrderID),
			logx.String("contractor_id", offer.ContractorID),
			logx.Err(err),
		)
		return
	}
	if exhausted {
		e.finishUndistributed(ctx, order)
	}
}

func (e *Engine) removeOffer(ctx context.Context, offer domain.Offer) (domain.Order, bool, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	unlock := e.locks.Lock(offer.OrderID)
	defer unlock()

	cur, ok, err := e.offers.Get(ctx, offer.OrderID, offer.ContractorID)
	if err != nil {
		return domain.Order{}, false, err
	}
	if !ok || cur.ID != offer.ID {
		return domain.Order{}, false, nil
	}
	if _, err := e.offers.Remove(ctx, offer.OrderID, offer.ContractorID); err != nil {
		return domain.Order{}, false, err
	}
	return e.exhausted(ctx, offer.OrderID)
}

// exhausted reports whether the run of orderID has no offers left while the
// order still waits for a contractor. The caller holds the order lock and
// must have just removed an offer, which makes the answer true at most once per run.
func (e *Engine) exhausted(ctx context.Context, orderID string) (domain.Order, bool, error) {
	left, err := e.offers.List(ctx, orderID)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("list offers of %s: %w", orderID, err)
	}
	if len(left) > 0 {
		return domain.Order{}, false, nil
	}
	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order.Status != domain.OrderCreated {
		return domain.Order{}, false, nil
	}
	return *order, true, nil
}

func (e *Engine) finishUndistributed(ctx context.Context, order domain.Order) {
	e.metrics.RunFinished(domain.OutcomeUndistributed)
	e.logger.Info("distribution exhausted",
		logx.String("event", "order_undistributed"),
		logx.String("order_id", order.ID),
	)
	e.broadcast(ctx, order, domain.OutcomeUndistributed, customer(order))
}

// Offers returns the outstanding offers of an order ordered by rank.
func (e *Engine) Offers(ctx context.Context, orderID string) ([]domain.Offer, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	return e.offers.List(ctx, orderID)
}

// broadcast tells every party the outcome. Failures are logged only: the
// state change they report has already been committed.
func (e *Engine) broadcast(ctx context.Context, order domain.Order, outcome domain.Outcome, parties ...domain.Party) {
	var g errgroup.Group
	g.SetLimit(e.cfg.DispatchConcurrency)
	for _, p := range parties {
		if p.ID == "" {
			continue
		}
		g.Go(func() error {
			nctx, cancel := context.WithTimeout(ctx, e.cfg.DispatchTimeout)
			defer cancel()
			if err := e.notifier.NotifyOutcome(nctx, p, order, outcome); err != nil {
				e.logger.Warn("outcome notification failed",
					logx.String("order_id", order.ID),
					logx.String("party", string(p.Role)),
					logx.String("party_id", p.ID),
					logx.String("outcome", string(outcome)),
					logx.Err(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func customer(o domain.Order) domain.Party {
	return domain.Party{Role: domain.PartyCustomer, ID: o.CustomerID}
}

func contractorParty(id string) domain.Party {
	return domain.Party{Role: domain.PartyContractor, ID: id}
}

func contractorsOf(offers []domain.Offer, skip string) []domain.Party {
	out := make([]domain.Party, 0, len(offers))
	for _, o := range offers {
		if o.ContractorID == skip {
			continue
		}
		out = append(out, contractorParty(o.ContractorID))
	}
	return out
}

func validateID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", apperr.ErrInvalid
	}
	return id, nil
}
