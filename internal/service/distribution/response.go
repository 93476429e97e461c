package distribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
	"drillflow-dispatch/internal/quota"
)

// settled collects what a locked response step decided; notifications go out
// after the lock is released.
type settled struct {
	outcome   domain.ResponseOutcome
	order     domain.Order
	exhausted bool
	assigned  bool
	withdrawn []domain.Offer
}

// HandleResponse applies a contractor's accept or decline. Stale, duplicate
// or losing responses are reported through the outcome, not as errors.
func (e *Engine) HandleResponse(ctx context.Context, resp domain.Response) (domain.ResponseOutcome, error) {
	orderID, err := validateID(resp.OrderID)
	if err != nil {
		return "", err
	}
	contractorID, err := validateID(resp.ContractorID)
	if err != nil {
		return "", err
	}
	if !resp.Kind.Valid() {
		return "", fmt.Errorf("response kind %q: %w", resp.Kind, apperr.ErrInvalid)
	}
	resp.OrderID, resp.ContractorID = orderID, contractorID

	st, err := e.settle(ctx, resp)
	if err != nil {
		return "", err
	}

	e.metrics.ResponseHandled(resp.Kind, st.outcome)
	e.logger.Info("contractor response handled",
		logx.String("event", "offer_response"),
		logx.String("order_id", orderID),
		logx.String("contractor_id", contractorID),
		logx.String("kind", string(resp.Kind)),
		logx.String("outcome", string(st.outcome)),
	)

	switch {
	case st.assigned:
		e.metrics.RunFinished(domain.OutcomeAssigned)
		e.logger.Info("contractor assigned",
			logx.String("event", "order_assigned"),
			logx.String("order_id", orderID),
			logx.String("contractor_id", contractorID),
			logx.Int("withdrawn", len(st.withdrawn)),
		)
		e.broadcast(ctx, st.order, domain.OutcomeAssigned, customer(st.order), contractorParty(contractorID))
		e.broadcast(ctx, st.order, domain.OutcomeOfferWithdraw, contractorsOf(st.withdrawn, contractorID)...)
	case st.exhausted:
		e.finishUndistributed(ctx, st.order)
	}
	return st.outcome, nil
}

func (e *Engine) settle(ctx context.Context, resp domain.Response) (settled, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	unlock := e.locks.Lock(resp.OrderID)
	defer unlock()

	offer, ok, err := e.offers.Get(ctx, resp.OrderID, resp.ContractorID)
	if err != nil {
		return settled{}, fmt.Errorf("get offer: %w", err)
	}
	if !ok {
		return settled{outcome: domain.OutcomeTooLate}, nil
	}

	at := e.now()
	if resp.At.After(at) {
		at = resp.At
	}
	if offer.Expired(at) {
		return e.withdraw(ctx, offer, domain.OutcomeTooLate)
	}
	if resp.Kind == domain.ResponseDecline {
		return e.withdraw(ctx, offer, domain.OutcomeDeclined)
	}
	return e.accept(ctx, offer, at)
}

// withdraw removes a single offer and checks whether that ended the run.
func (e *Engine) withdraw(ctx context.Context, offer domain.Offer, outcome domain.ResponseOutcome) (settled, error) {
	if _, err := e.offers.Remove(ctx, offer.OrderID, offer.ContractorID); err != nil {
		return settled{}, fmt.Errorf("remove offer: %w", err)
	}
	order, exhausted, err := e.exhausted(ctx, offer.OrderID)
	if err != nil {
		return settled{}, err
	}
	return settled{outcome: outcome, order: order, exhausted: exhausted}, nil
}

func (e *Engine) accept(ctx context.Context, offer domain.Offer, at time.Time) (settled, error) {
	order, err := e.orders.GetOrder(ctx, offer.OrderID)
	if err != nil {
		return settled{}, fmt.Errorf("get order %s: %w", offer.OrderID, err)
	}
	if order.Status != domain.OrderCreated {
		return settled{outcome: domain.OutcomeTooLate}, nil
	}

	contractor, err := e.contractors.GetContractor(ctx, offer.ContractorID)
	if err != nil {
		return settled{}, fmt.Errorf("get contractor %s: %w", offer.ContractorID, err)
	}
	if contractor.Status != domain.ContractorActive {
		return e.withdraw(ctx, offer, domain.OutcomeTooLate)
	}

	day := e.day(at)
	ok, count, err := e.quota.TryIncrement(ctx, contractor.ID, day, contractor.Cap())
	if err != nil {
		return settled{}, fmt.Errorf("reserve quota for %s: %w", contractor.ID, err)
	}
	if !ok {
		e.logger.Info("daily cap reached on accept",
			logx.String("order_id", order.ID),
			logx.String("contractor_id", contractor.ID),
			logx.Int("count", count),
			logx.Int("cap", contractor.Cap()),
		)
		return e.withdraw(ctx, offer, domain.OutcomeQuotaExceeded)
	}

	order.Status = domain.OrderAssigned
	order.ContractorID = contractor.ID
	order.UpdatedAt = at
	if err := e.orders.SaveOrder(ctx, order); err != nil {
		e.releaseQuota(ctx, contractor.ID, day)
		if errors.Is(err, apperr.ErrConflict) {
			// another instance changed the order first
			if _, rerr := e.offers.Remove(ctx, offer.OrderID, offer.ContractorID); rerr != nil {
				return settled{}, fmt.Errorf("remove offer: %w", rerr)
			}
			return settled{outcome: domain.OutcomeTooLate}, nil
		}
		return settled{}, fmt.Errorf("save order %s: %w", order.ID, err)
	}

	withdrawn, err := e.offers.RemoveAll(ctx, order.ID)
	if err != nil {
		e.logger.Error("discard outstanding offers",
			logx.String("order_id", order.ID),
			logx.Err(err),
		)
	}

	return settled{
		outcome:   domain.OutcomeAccepted,
		order:     *order,
		assigned:  true,
		withdrawn: withdrawn,
	}, nil
}

func (e *Engine) releaseQuota(ctx context.Context, contractorID string, day quota.Day) {
	if err := e.quota.Decrement(ctx, contractorID, day); err != nil {
		e.logger.Error("release quota reservation",
			logx.String("contractor_id", contractorID),
			logx.String("day", string(day)),
			logx.Err(err),
		)
	}
}
