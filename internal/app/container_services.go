package app

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"drillflow-dispatch/internal/config"
	"drillflow-dispatch/internal/logx"
	"drillflow-dispatch/internal/matching"
	"drillflow-dispatch/internal/metrics"
	"drillflow-dispatch/internal/notify"
	"drillflow-dispatch/internal/offers"
	"drillflow-dispatch/internal/quota"
	"drillflow-dispatch/internal/repository"
	"drillflow-dispatch/internal/service/contractor"
	"drillflow-dispatch/internal/service/distribution"
	"drillflow-dispatch/internal/service/orders"
)

// notifierCloser releases the broker connection of the notifier, if any.
type notifierCloser func() error

type notifierOut struct {
	dig.Out
	Notifier distribution.Notifier
	Closer   notifierCloser
}

type notifierIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"notify_retries_total"`
}

var newSyncProducer = notify.NewSyncProducer

func provideNotifier(in notifierIn) (notifierOut, error) {
	n := in.Config.Notify
	retry := notify.RetryConfig{
		MaxAttempts: n.MaxAttempts,
		BaseDelay:   n.BaseDelay,
		MaxDelay:    n.MaxDelay,
	}

	switch n.Backend {
	case config.NotifyKafka:
		producer, err := newSyncProducer(in.Config.Kafka.Brokers)
		if err != nil {
			return notifierOut{}, fmt.Errorf("kafka producer: %w", err)
		}
		kn := notify.NewKafkaNotifier(producer, in.Config.Kafka.OffersTopic, in.Config.Kafka.OutcomesTopic, in.Logger)
		return notifierOut{
			Notifier: notify.NewRetryingNotifier(kn, in.Logger, in.Retries, retry),
			Closer:   kn.Close,
		}, nil
	default:
		ln := notify.NewLogNotifier(in.Logger)
		return notifierOut{
			Notifier: notify.NewRetryingNotifier(ln, in.Logger, in.Retries, retry),
			Closer:   func() error { return nil },
		}, nil
	}
}

func provideQuota(cfg *config.Config, pool *pgxpool.Pool) distribution.QuotaTracker {
	if cfg.Dispatch.QuotaBackend == config.QuotaMemory {
		return quota.NewMemory()
	}
	return repository.NewQuotaRepo(pool)
}

type engineIn struct {
	dig.In
	Config      *config.Config
	Logger      logx.Logger
	Orders      *repository.OrderRepo
	Contractors *repository.ContractorRepo
	Offers      *offers.Memory
	Quota       distribution.QuotaTracker
	Notifier    distribution.Notifier
	Metrics     *metrics.Dispatch
}

func provideEngine(in engineIn) (*distribution.Engine, error) {
	d := in.Config.Dispatch
	loc, err := d.Location()
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", d.TimeZone, err)
	}
	policy := matching.Policy{
		Mode:            matching.RankMode(d.RankMode),
		RequireLocation: d.RequireLocation,
		MaxCandidates:   d.MaxCandidates,
	}
	if !policy.Mode.Valid() {
		return nil, fmt.Errorf("unknown rank mode %q", d.RankMode)
	}

	return distribution.NewEngine(
		distribution.Deps{
			Orders:      in.Orders,
			Contractors: in.Contractors,
			Offers:      in.Offers,
			Quota:       in.Quota,
			Notifier:    in.Notifier,
			Metrics:     in.Metrics,
		},
		policy,
		distribution.Config{
			OfferTTL:            d.OfferTTL,
			DispatchTimeout:     d.DispatchTimeout,
			DispatchConcurrency: d.Concurrency,
			OperationTimeout:    d.OperationTimeout,
			TimeZone:            loc,
		},
		in.Logger.With(logx.String("component", "distribution")),
	), nil
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewContractorRepo,
		offers.NewMemory,
		provideQuota,
		provideNotifier,
		provideEngine,
		func(repo *repository.ContractorRepo, cfg *config.Config, logger logx.Logger) *contractor.Service {
			return contractor.NewService(repo, cfg.Dispatch.OperationTimeout, logger)
		},
		func(engine *distribution.Engine, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(engine, logger)
		},
	)
}
