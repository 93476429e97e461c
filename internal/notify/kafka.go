package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"drillflow-dispatch/internal/domain"
	"drillflow-dispatch/internal/logx"
)

// KafkaNotifier publishes offers and outcomes for the bot layer to render.
// Offers are keyed by contractor so one contractor's messages stay ordered.
type KafkaNotifier struct {
	producer      sarama.SyncProducer
	offersTopic   string
	outcomesTopic string
	logger        logx.Logger
	now           func() time.Time
}

// NewKafkaNotifier wraps an existing producer.
func NewKafkaNotifier(p sarama.SyncProducer, offersTopic, outcomesTopic string, logger logx.Logger) *KafkaNotifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &KafkaNotifier{
		producer:      p,
		offersTopic:   offersTopic,
		outcomesTopic: outcomesTopic,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// NewSyncProducer connects a producer that waits for all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return p, nil
}

// OfferOrder publishes the offer. It returns once the broker acknowledged the
// message or ctx is done.
func (n *KafkaNotifier) OfferOrder(ctx context.Context, c domain.Contractor, o domain.Order, offer domain.Offer) error {
	body, err := json.Marshal(newOfferMessage(c, o, offer))
	if err != nil {
		return fmt.Errorf("encode offer: %w", err)
	}
	return n.send(ctx, &sarama.ProducerMessage{
		Topic: n.offersTopic,
		Key:   sarama.StringEncoder(c.ID),
		Value: sarama.ByteEncoder(body),
	})
}

// NotifyOutcome publishes an outcome keyed by order.
func (n *KafkaNotifier) NotifyOutcome(ctx context.Context, p domain.Party, o domain.Order, outcome domain.Outcome) error {
	body, err := json.Marshal(newOutcomeMessage(p, o, outcome, n.now()))
	if err != nil {
		return fmt.Errorf("encode outcome: %w", err)
	}
	return n.send(ctx, &sarama.ProducerMessage{
		Topic: n.outcomesTopic,
		Key:   sarama.StringEncoder(o.ID),
		Value: sarama.ByteEncoder(body),
	})
}

func (n *KafkaNotifier) send(ctx context.Context, msg *sarama.ProducerMessage) error {
	type result struct {
		partition int32
		offset    int64
		err       error
	}
	// SyncProducer ignores ctx; the buffered channel lets the send finish after we gave up
	done := make(chan result, 1)
	go func() {
		partition, offset, err := n.producer.SendMessage(msg)
		done <- result{partition: partition, offset: offset, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("publish to %s: %w", msg.Topic, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return fmt.Errorf("publish to %s: %w", msg.Topic, r.err)
		}
		n.logger.Debug("kafka message published",
			logx.String("topic", msg.Topic),
			logx.Int("partition", int(r.partition)),
			logx.Int64("offset", r.offset),
		)
		return nil
	}
}

// Close closes the producer.
func (n *KafkaNotifier) Close() error {
	if n == nil || n.producer == nil {
		return nil
	}
	return n.producer.Close()
}
