package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"drillflow-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out
	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	NotifyRetriesTotal     prometheus.Counter `name:"notify_retries_total"`
	Dispatch               *metrics.Dispatch
}

// register adds c to the default registry. If an equal collector is already
// there (tests, second container in one process) the existing one is returned.
func register[T prometheus.Collector](name string, c T) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.NotifyRetriesTotal, err = register("notify_retries_total", metrics.NewNotifyRetriesTotal()); err != nil {
		return metricsOut{}, err
	}

	d := metrics.NewDispatch()
	if d.RunsStarted, err = register("distribution_runs_started_total", d.RunsStarted); err != nil {
		return metricsOut{}, err
	}
	if d.Candidates, err = register("distribution_candidates", d.Candidates); err != nil {
		return metricsOut{}, err
	}
	if d.OffersSent, err = register("distribution_offers_dispatched_total", d.OffersSent); err != nil {
		return metricsOut{}, err
	}
	if d.Responses, err = register("distribution_responses_total", d.Responses); err != nil {
		return metricsOut{}, err
	}
	if d.RunsFinished, err = register("distribution_orders_finished_total", d.RunsFinished); err != nil {
		return metricsOut{}, err
	}
	if d.Expired, err = register("distribution_offers_expired_total", d.Expired); err != nil {
		return metricsOut{}, err
	}
	out.Dispatch = d
	return out, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}
