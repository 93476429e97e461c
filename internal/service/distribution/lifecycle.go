package distribution

import (
	"context"
	"fmt"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

// Rating bounds accepted on completion.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Cancel stops an order that has not finished yet. Outstanding offers are
// discarded, so any later response to them is too late.
func (e *Engine) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	return e.terminate(ctx, orderID, domain.OrderCancelled, domain.OutcomeCancelled, "")
}

// Fail marks an unfinished order as failed with an operator-provided reason.
func (e *Engine) Fail(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	return e.terminate(ctx, orderID, domain.OrderFailed, domain.OutcomeFailed, reason)
}

func (e *Engine) terminate(
	ctx context.Context,
	orderID string,
	status domain.OrderStatus,
	outcome domain.Outcome,
	reason string,
) (*domain.Order, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return nil, err
	}

	order, discarded, err := e.terminateLocked(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	e.metrics.RunFinished(outcome)
	e.logger.Info("order terminated",
		logx.String("event", "order_"+string(status)),
		logx.String("order_id", orderID),
		logx.String("reason", reason),
		logx.Int("discarded_offers", len(discarded)),
	)

	parties := append([]domain.Party{customer(order)}, contractorsOf(discarded, order.ContractorID)...)
	if order.ContractorID != "" {
		parties = append(parties, contractorParty(order.ContractorID))
	}
	e.broadcast(ctx, order, outcome, parties...)

	return &order, nil
}

func (e *Engine) terminateLocked(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, []domain.Offer, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	unlock := e.locks.Lock(orderID)
	defer unlock()

	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if !order.Status.CanTransitionTo(status) {
		return domain.Order{}, nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, apperr.ErrConflict)
	}

	order.Status = status
	order.UpdatedAt = e.now()
	if err := e.orders.SaveOrder(ctx, order); err != nil {
		return domain.Order{}, nil, fmt.Errorf("save order %s: %w", orderID, err)
	}

	discarded, err := e.offers.RemoveAll(ctx, orderID)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("discard offers of %s: %w", orderID, err)
	}
	return *order, discarded, nil
}

// Start moves an assigned order to in progress. Only the assigned contractor may start it.
func (e *Engine) Start(ctx context.Context, orderID, contractorID string) (*domain.Order, error) {
	order, err := e.advance(ctx, orderID, contractorID, domain.OrderInProgress)
	if err != nil {
		return nil, err
	}

	e.logger.Info("order started",
		logx.String("event", "order_in_progress"),
		logx.String("order_id", order.ID),
		logx.String("contractor_id", order.ContractorID),
	)
	return order, nil
}

// Complete finishes an order in progress. A non-nil rating in [1, 5] is folded
// into the contractor's average over rated orders. A failure to update the
// contractor is logged; the order stays completed.
func (e *Engine) Complete(ctx context.Context, orderID, contractorID string, rating *float64) (*domain.Order, error) {
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return nil, fmt.Errorf("rating %.2f out of range: %w", *rating, apperr.ErrInvalid)
	}

	order, err := e.advance(ctx, orderID, contractorID, domain.OrderCompleted)
	if err != nil {
		return nil, err
	}

	// заказ уже сохранён как выполненный, ошибка статистики не должна его откатывать
	if err := e.recordCompletion(ctx, order.ContractorID, rating); err != nil {
		e.logger.Error("contractor stats not updated",
			logx.String("event", "contractor_stats_failed"),
			logx.String("order_id", order.ID),
			logx.String("contractor_id", order.ContractorID),
			logx.Bool("rated", rating != nil),
			logx.Err(err),
		)
	}

	e.metrics.RunFinished(domain.OutcomeCompleted)
	e.logger.Info("order completed",
		logx.String("event", "order_completed"),
		logx.String("order_id", order.ID),
		logx.String("contractor_id", order.ContractorID),
	)
	e.broadcast(ctx, *order, domain.OutcomeCompleted, customer(*order))
	return order, nil
}

func (e *Engine) advance(ctx context.Context, orderID, contractorID string, next domain.OrderStatus) (*domain.Order, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return nil, err
	}
	contractorID, err = validateID(contractorID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	unlock := e.locks.Lock(orderID)
	defer unlock()

	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order.ContractorID != contractorID {
		return nil, fmt.Errorf("order %s is not assigned to %s: %w", orderID, contractorID, apperr.ErrForbidden)
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("order %s cannot move from %s to %s: %w", orderID, order.Status, next, apperr.ErrConflict)
	}

	now := e.now()
	order.Status = next
	order.UpdatedAt = now
	if next == domain.OrderCompleted {
		order.CompletedAt = &now
	}
	if err := e.orders.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order %s: %w", orderID, err)
	}
	return order, nil
}

func (e *Engine) recordCompletion(ctx context.Context, contractorID string, rating *float64) error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	// contractor rows are keyed separately from orders
	unlock := e.locks.Lock("contractor:" + contractorID)
	defer unlock()

	c, err := e.contractors.GetContractor(ctx, contractorID)
	if err != nil {
		return fmt.Errorf("get contractor %s: %w", contractorID, err)
	}
	if rating != nil {
		c.Rating = foldRating(c.Rating, c.RatingsCount, *rating)
		c.RatingsCount++
	}
	c.OrdersCompleted++
	if err := e.contractors.SaveContractor(ctx, c); err != nil {
		return fmt.Errorf("save contractor %s: %w", contractorID, err)
	}
	return nil
}

// foldRating adds one rating to an average taken over n previous ratings.
func foldRating(avg float64, n int, r float64) float64 {
	if n <= 0 {
		return r
	}
	return (avg*float64(n) + r) / float64(n+1)
}
