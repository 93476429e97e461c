//go:generate mockgen -source=contracts.go -destination=distribution_mocks_test.go -package=distribution_test

package distribution

import (
	"context"
	"time"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/quota"
)

// OrderRepository loads and stores orders.
type OrderRepository interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// SaveOrder persists o when the stored version equals o.Version and bumps it.
	// A mismatch yields apperr.ErrConflict.
	SaveOrder(ctx context.Context, o *domain.Order) error
}

// ContractorRepository loads and stores contractors.
type ContractorRepository interface {
	GetContractor(ctx context.Context, id string) (*domain.Contractor, error)
	ListActiveBySpecialization(ctx context.Context, spec domain.Specialization) ([]domain.Contractor, error)
	SaveContractor(ctx context.Context, c *domain.Contractor) error
}

// OfferStore keeps outstanding offers between a run and the responses to it.
type OfferStore interface {
	Put(ctx context.Context, offers []domain.Offer) error
	Get(ctx context.Context, orderID, contractorID string) (domain.Offer, bool, error)
	MarkDelivered(ctx context.Context, orderID, contractorID string) (bool, error)
	Remove(ctx context.Context, orderID, contractorID string) (bool, error)
	RemoveAll(ctx context.Context, orderID string) ([]domain.Offer, error)
	List(ctx context.Context, orderID string) ([]domain.Offer, error)
	Expired(ctx context.Context, now time.Time) ([]domain.Offer, error)
}

// QuotaTracker counts accepted orders per contractor and day.
type QuotaTracker = quota.Tracker

// Notifier delivers offers and outcomes to people. A nil error is the delivery ack.
type Notifier interface {
	OfferOrder(ctx context.Context, contractor domain.Contractor, order domain.Order, offer domain.Offer) error
	NotifyOutcome(ctx context.Context, party domain.Party, order domain.Order, outcome domain.Outcome) error
}

// Metrics observes distribution runs.
type Metrics interface {
	RunStarted(candidates int)
	OfferDispatched(delivered bool)
	ResponseHandled(kind domain.ResponseKind, outcome domain.ResponseOutcome)
	RunFinished(outcome domain.Outcome)
	OffersExpired(n int)
}

type nopMetrics struct{}

func (nopMetrics) RunStarted(int)                                              {}
func (nopMetrics) OfferDispatched(bool)                                        {}
func (nopMetrics) ResponseHandled(domain.ResponseKind, domain.ResponseOutcome) {}
func (nopMetrics) RunFinished(domain.Outcome)                                  {}
func (nopMetrics) OffersExpired(int)                                           {}
