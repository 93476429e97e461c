package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"drillflow-dispatch/internal/logx"
	"drillflow-dispatch/internal/service/distribution"
	"drillflow-dispatch/internal/transport/kafka"
)

// Runner runs the dispatcher: HTTP API, offer expiry sweeper and order-event consumer.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner bound to the container-driven run.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the dispatcher using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	var logger logx.Logger = logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

type runIn struct {
	dig.In
	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pool     *pgxpool.Pool
	Engine   *distribution.Engine
	Interval sweepInterval
	Consumer *kafka.Consumer
	Notifier notifierCloser `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	defer func() { _ = in.Logger.Sync() }()

	startServer(in.Server, in.Logger)
	startSweepLoop(in.Ctx, in.Logger, in.Engine, time.Duration(in.Interval))
	consumerDone := startConsumer(in.Ctx, in.Logger, in.Consumer)

	waitForShutdown(in.Ctx, in.Logger)
	gracefulShutdown(in.Server, in.Logger, 15*time.Second)
	<-consumerDone
	closeResources(in.Pool, in.Server, in.Consumer, in.Notifier, in.Logger)
	return in.Ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("dispatcher listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

type sweeper interface {
	RunSweeper(ctx context.Context, interval time.Duration)
}

func startSweepLoop(ctx context.Context, logger logx.Logger, s sweeper, interval time.Duration) {
	if s == nil || interval <= 0 {
		logger.Warn("offer sweeper disabled", logx.Duration("interval", interval))
		return
	}
	go s.RunSweeper(ctx, interval)
}

// startConsumer runs the order-event consumer until ctx is done. The returned
// channel is closed when it has stopped; a nil consumer closes it at once.
func startConsumer(ctx context.Context, logger logx.Logger, consumer *kafka.Consumer) <-chan struct{} {
	done := make(chan struct{})
	if consumer == nil {
		logger.Info("kafka not configured, order events are not consumed")
		close(done)
		return done
	}
	go func() {
		defer close(done)
		logger.Info("order-event consumer started")
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("order-event consumer stopped", logx.Err(err))
		}
	}()
	return done
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down dispatcher...")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(
	pool *pgxpool.Pool,
	server *http.Server,
	consumer *kafka.Consumer,
	notifier notifierCloser,
	logger logx.Logger,
) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	if notifier != nil {
		if err := notifier(); err != nil {
			logger.Error("notifier close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
