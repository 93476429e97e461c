//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"drillflow-dispatch/internal/domain"
)

// DistributionPort abstracts the subset of distribution engine operations
// needed by orders Processor when handling order events
type DistributionPort interface {
	Distribute(ctx context.Context, orderID string) (domain.RunResult, error)
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)
	Fail(ctx context.Context, orderID, reason string) (*domain.Order, error)
}
