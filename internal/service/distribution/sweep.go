package distribution

import (
	"context"
	"fmt"
	"time"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

// SweepExpired releases offers whose TTL passed without an answer and ends
// runs left without offers. It returns the number of offers released.
func (e *Engine) SweepExpired(ctx context.Context) (int, error) {
	now := e.now()

	lctx, cancel := e.withTimeout(ctx)
	expired, err := e.offers.Expired(lctx, now)
	cancel()
	if err != nil {
		return 0, fmt.Errorf("list expired offers: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	released := 0
	for start := 0; start < len(expired); {
		end := start
		for end < len(expired) && expired[end].OrderID == expired[start].OrderID {
			end++
		}
		n, order, exhausted, err := e.expireOrder(ctx, expired[start:end], now)
		if err != nil {
			e.logger.Error("expire offers",
				logx.String("order_id", expired[start].OrderID),
				logx.Err(err),
			)
		}
		released += n
		if exhausted {
			e.finishUndistributed(ctx, order)
		}
		start = end
	}

	e.metrics.OffersExpired(released)
	if released > 0 {
		e.logger.Info("expired offers released",
			logx.String("event", "offers_expired"),
			logx.Int("released", released),
		)
	}
	return released, nil
}

// expireOrder removes the still-expired offers of one order under its lock.
func (e *Engine) expireOrder(ctx context.Context, batch []domain.Offer, now time.Time) (int, domain.Order, bool, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	orderID := batch[0].OrderID
	unlock := e.locks.Lock(orderID)
	defer unlock()

	removed := 0
	for _, o := range batch {
		cur, ok, err := e.offers.Get(ctx, orderID, o.ContractorID)
		if err != nil {
			return removed, domain.Order{}, false, err
		}
		if !ok || cur.ID != o.ID || !cur.Expired(now) {
			continue
		}
		if ok, err := e.offers.Remove(ctx, orderID, o.ContractorID); err != nil {
			return removed, domain.Order{}, false, err
		} else if ok {
			removed++
		}
	}
	if removed == 0 {
		return 0, domain.Order{}, false, nil
	}

	order, exhausted, err := e.exhausted(ctx, orderID)
	return removed, order, exhausted, err
}

// RunSweeper calls SweepExpired every interval until ctx is done.
func (e *Engine) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	e.logger.Info("offer sweeper started", logx.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("offer sweeper stopped")
			return
		case <-t.C:
			if _, err := e.SweepExpired(ctx); err != nil {
				e.logger.Error("offer sweep failed", logx.Err(err))
			}
		}
	}
}
