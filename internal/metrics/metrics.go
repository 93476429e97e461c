package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"drillflow-dispatch/internal/domain"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewNotifyRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the notifier
func NewNotifyRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_retries_total",
		Help: "Total number of retry attempts performed when delivering outcome notifications",
	})
}

// Dispatch collects distribution run metrics.
type Dispatch struct {
	RunsStarted  prometheus.Counter
	Candidates   prometheus.Histogram
	OffersSent   *prometheus.CounterVec
	Responses    *prometheus.CounterVec
	RunsFinished *prometheus.CounterVec
	Expired      prometheus.Counter
}

// NewDispatch creates unregistered distribution collectors.
func NewDispatch() *Dispatch {
	return &Dispatch{
		RunsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_runs_started_total",
			Help: "Total number of distribution runs that issued at least one offer",
		}),
		Candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "distribution_candidates",
			Help:    "Number of contractors offered an order per run",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		}),
		OffersSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "distribution_offers_dispatched_total",
			Help: "Offers handed to the notifier by delivery result",
		}, []string{"delivered"}),
		Responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "distribution_responses_total",
			Help: "Contractor responses by kind and outcome",
		}, []string{"kind", "outcome"}),
		RunsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "distribution_orders_finished_total",
			Help: "Orders leaving distribution by outcome",
		}, []string{"outcome"}),
		Expired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_offers_expired_total",
			Help: "Offers released by the expiry sweep",
		}),
	}
}

// Collectors lists everything that has to be registered.
func (d *Dispatch) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		d.RunsStarted, d.Candidates, d.OffersSent, d.Responses, d.RunsFinished, d.Expired,
	}
}

// RunStarted counts a run that offered the order to candidates contractors.
func (d *Dispatch) RunStarted(candidates int) {
	d.RunsStarted.Inc()
	d.Candidates.Observe(float64(candidates))
}

// OfferDispatched counts a notifier call.
func (d *Dispatch) OfferDispatched(delivered bool) {
	d.OffersSent.WithLabelValues(strconv.FormatBool(delivered)).Inc()
}

// ResponseHandled counts a processed contractor response.
func (d *Dispatch) ResponseHandled(kind domain.ResponseKind, outcome domain.ResponseOutcome) {
	d.Responses.WithLabelValues(string(kind), string(outcome)).Inc()
}

// RunFinished counts an order leaving distribution or finishing its lifecycle.
func (d *Dispatch) RunFinished(outcome domain.Outcome) {
	d.RunsFinished.WithLabelValues(string(outcome)).Inc()
}

// OffersExpired counts offers released by the sweep.
func (d *Dispatch) OffersExpired(n int) {
	if n > 0 {
		d.Expired.Add(float64(n))
	}
}
