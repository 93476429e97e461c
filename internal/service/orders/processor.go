package orders

import (
	"context"
	"errors"

	"drillflow-dispatch/internal/apperr"
	"drillflow-dispatch/internal/logx"
)

const defaultFailReason = "reported failed by order service"

// Processor processes orders events
type Processor struct {
	engine  DistributionPort
	logger  logx.Logger
	factory *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(engine DistributionPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		engine: engine,
		logger: logger,
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled, p.onFailed)
	return p
}

// Handle processes a single orders.Event. Unknown statuses are skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e)
	if !ok {
		p.logger.Debug("order event skipped",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	res, err := p.engine.Distribute(ctx, e.OrderID)
	switch {
	case errors.Is(err, apperr.ErrNoEligibleContractors):
		p.logger.Info("order left undistributed",
			logx.String("event", "order_event_undistributed"),
			logx.String("order_id", e.OrderID),
		)
		return nil
	case errors.Is(err, apperr.ErrConflict):
		// redelivered event or a run is already in flight
		return nil
	case err != nil:
		return err
	}
	p.logger.Debug("order event distributed",
		logx.String("order_id", e.OrderID),
		logx.Int("offered", res.Offered),
		logx.Int("delivered", res.Delivered),
	)
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	_, err := p.engine.Cancel(ctx, e.OrderID)
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		return nil
	}
	return err
}

func (p *Processor) onFailed(ctx context.Context, e Event) error {
	reason := e.Reason
	if reason == "" {
		reason = defaultFailReason
	}
	_, err := p.engine.Fail(ctx, e.OrderID, reason)
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		return nil
	}
	return err
}
