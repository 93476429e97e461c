package notify

import (
	"context"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

// LogNotifier only writes what would have been sent. It is used when no
// broker is configured so distribution still runs locally.
type LogNotifier struct {
	logger logx.Logger
}

// NewLogNotifier returns a notifier that acknowledges everything.
func NewLogNotifier(logger logx.Logger) *LogNotifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) OfferOrder(_ context.Context, c domain.Contractor, o domain.Order, offer domain.Offer) error {
	n.logger.Info("offer",
		logx.String("order_id", o.ID),
		logx.String("contractor_id", c.ID),
		logx.String("chat_id", c.UserID),
		logx.Int("rank", offer.Rank),
		logx.Time("expires_at", offer.ExpiresAt),
	)
	return nil
}

func (n *LogNotifier) NotifyOutcome(_ context.Context, p domain.Party, o domain.Order, outcome domain.Outcome) error {
	n.logger.Info("outcome",
		logx.String("order_id", o.ID),
		logx.String("role", string(p.Role)),
		logx.String("party_id", p.ID),
		logx.String("outcome", string(outcome)),
	)
	return nil
}
