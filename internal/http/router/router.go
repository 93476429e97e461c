package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"drillflow-dispatch/internal/http/handlers"
	obs "drillflow-dispatch/internal/http/middleware"
	"drillflow-dispatch/internal/http/middleware/ratelimit"
	"drillflow-dispatch/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// rl may be nil, then nothing is rate limited.
func New(
	logger logx.Logger,
	h *handlers.Handlers,
	orders *handlers.OrderHandler,
	contractors *handlers.ContractorHandler,
	rl *ratelimit.Middleware,
) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	if rl == nil {
		rl = ratelimit.New(logger, nil, nil)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(h.NotFound))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.Use(rl.Handler())

		r.Route("/orders/{orderID}", func(r chi.Router) {
			r.Post("/distribute", orders.Distribute)
			r.Get("/offers", orders.Offers)
			r.Post("/cancel", orders.Cancel)
			r.Post("/fail", orders.Fail)
			r.Post("/start", orders.Start)
			r.Post("/complete", orders.Complete)
		})

		r.Route("/contractors", func(r chi.Router) {
			r.Get("/", contractors.List)
			r.Post("/", contractors.Create)
			r.Get("/{id}", contractors.GetByID)
			r.Patch("/{id}", contractors.Update)
			r.Post("/{id}/block", contractors.Block)
			r.Post("/{id}/activate", contractors.Activate)
		})
	})

	// ответы подрядчиков лимитируем по подрядчику, а не по ip бота
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.With(rl.WithKey(ratelimit.ByURLParam("contractorID")).Handler()).
			Post("/orders/{orderID}/offers/{contractorID}/response", orders.Respond)
	})

	return r
}
