package notify

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

type notifier interface {
	OfferOrder(context.Context, domain.Contractor, domain.Order, domain.Offer) error
	NotifyOutcome(context.Context, domain.Party, domain.Order, domain.Outcome) error
}

type counter interface {
	Inc()
}

// RetryConfig описывает поведение RetryingNotifier
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingNotifier retries outcome notifications on transient broker errors.
// Offers pass straight through: a failed offer is a decline for that run.
type RetryingNotifier struct {
	next    notifier
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(context.Context, time.Duration) bool
}

// NewRetryingNotifier возвращает nil, если next не задан
func NewRetryingNotifier(next notifier, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingNotifier {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingNotifier{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// OfferOrder delegates without retrying.
func (n *RetryingNotifier) OfferOrder(ctx context.Context, c domain.Contractor, o domain.Order, offer domain.Offer) error {
	return n.next.OfferOrder(ctx, c, o, offer)
}

// NotifyOutcome delegates and retries transient failures with exponential backoff.
func (n *RetryingNotifier) NotifyOutcome(ctx context.Context, p domain.Party, o domain.Order, outcome domain.Outcome) error {
	var lastErr error
	for attempt := 1; attempt <= n.cfg.MaxAttempts; attempt++ {
		err := n.next.NotifyOutcome(ctx, p, o, outcome)
		if err == nil {
			return nil
		}
		lastErr = err
		// проверяем условия повтора
		if ctx.Err() != nil || attempt == n.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(n.cfg.BaseDelay, n.cfg.MaxDelay, attempt)
		if n.retries != nil {
			n.retries.Inc()
		}
		n.logger.Warn("outcome notify retry",
			logx.String("order_id", o.ID),
			logx.String("outcome", string(outcome)),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !n.sleep(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable определяет, является ли ошибка повторяемой
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNetworkException):
		return true
	default:
		return false
	}
}

// backoff вычисляет задержку повтора; при переполнении сдвига берётся max
func backoff(base, max time.Duration, attempt int) time.Duration {
	shift := attempt - 1
	if shift < 0 {
		shift = 0
	}
	if shift >= 63 {
		return max
	}
	d := base << shift
	if d <= 0 || d>>shift != base || d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
