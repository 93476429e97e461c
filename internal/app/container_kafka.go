package app

import (
	"context"
	"time"

	"go.uber.org/dig"

	"drillflow-dispatch/internal/config"
	"drillflow-dispatch/internal/logx"
	"drillflow-dispatch/internal/service/orders"
	"drillflow-dispatch/internal/transport/kafka"
)

type orderEventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersHandler bounds every order event by timeout so a stuck store
// cannot hold a partition forever.
func makeOrdersHandler(p orderEventHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return p.Handle(ctx, event)
	}
}

var newKafkaConsumer = kafka.NewConsumer

func provideConsumer(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
	k := cfg.Kafka
	// a run waits for every offer dispatch, so leave it room beyond one operation
	timeout := cfg.Dispatch.DispatchTimeout + 2*cfg.Dispatch.OperationTimeout
	return newKafkaConsumer(logger, k.Brokers, k.GroupID, k.OrdersTopic, makeOrdersHandler(p, timeout))
}

func registerKafka(container *dig.Container) error {
	return provideAll(container, provideConsumer)
}
