package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"drillflow-dispatch/internal/logx"
	"drillflow-dispatch/internal/matching"
	"drillflow-dispatch/internal/offers"
	"drillflow-dispatch/internal/service/distribution"
	testlog "drillflow-dispatch/internal/testutil"
	"drillflow-dispatch/internal/transport/kafka"
)

type fakeSweeper struct {
	mu       sync.Mutex
	interval time.Duration
	calls    int
}

func (f *fakeSweeper) RunSweeper(ctx context.Context, interval time.Duration) {
	f.mu.Lock()
	f.calls++
	f.interval = interval
	f.mu.Unlock()
	<-ctx.Done()
}

func (f *fakeSweeper) Calls() (int, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.interval
}

func hasMsg(entries []testlog.Entry, msg string) bool {
	for _, e := range entries {
		if e.Msg == msg {
			return true
		}
	}
	return false
}

// requireEventually - делаем проверку, пока она не будет пройдена или не истекнет таймаут, для защиты в CI от флаков
// вдруг у нас планировщик не успеет
func requireEventually(t *testing.T, timeout time.Duration, tick time.Duration, condition func() bool, msgAndArgs ...any) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		if condition() {
			return
		}
		if time.Now().After(deadline) {
			if len(msgAndArgs) > 0 {
				t.Fatalf(msgAndArgs[0].(string), msgAndArgs[1:]...)
			}
			t.Fatalf("condition not satisfied within %s", timeout)
		}
		<-ticker.C
	}
}

func TestStartSweepLoop_RunsSweeper(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &fakeSweeper{}
	startSweepLoop(ctx, logx.Nop(), s, 10*time.Millisecond)

	requireEventually(
		t,
		500*time.Millisecond,
		5*time.Millisecond,
		func() bool { n, _ := s.Calls(); return n == 1 },
		"expected RunSweeper to be started",
	)
	_, interval := s.Calls()
	require.Equal(t, 10*time.Millisecond, interval)
}

func TestStartSweepLoop_DisabledInterval(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	s := &fakeSweeper{}
	startSweepLoop(context.Background(), rec.Logger(), s, 0)

	require.True(t, hasMsg(rec.Entries(), "offer sweeper disabled"))
	n, _ := s.Calls()
	require.Zero(t, n)
}

func TestStartConsumer_NilClosesImmediately(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	done := startConsumer(context.Background(), rec.Logger(), nil)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done channel not closed")
	}
	require.True(t, hasMsg(rec.Entries(), "kafka not configured, order events are not consumed"))
}

func TestGracefulShutdown_DoesNotPanic(t *testing.T) {
	t.Parallel()

	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}
	logger := logx.Nop()

	require.NotPanics(t, func() {
		gracefulShutdown(srv, logger, 100*time.Millisecond)
	})
}

func TestCloseResources_ClosesNotifier(t *testing.T) {
	t.Parallel()

	closed := false
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	closeResources(nil, srv, nil, func() error { closed = true; return nil }, logx.Nop())
	require.True(t, closed)
}

func TestMustRun_ShutdownRequested(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	container := dig.New()
	require.NoError(t, container.Provide(func() logx.Logger {
		return rec.Logger()
	}))

	r := &Runner{
		runFn: func(_ *dig.Container) error {
			return context.Canceled
		},
	}
	r.MustRun(container)
	require.True(t, hasMsg(rec.Entries(), "shutdown requested, exiting"))
}

func TestRunner_MustRun_StartupTimeout(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	container := dig.New()
	require.NoError(t, container.Provide(func() logx.Logger {
		return rec.Logger()
	}))

	r := &Runner{
		runFn: func(_ *dig.Container) error {
			return context.DeadlineExceeded
		},
	}

	r.MustRun(container)
	require.True(t, hasMsg(rec.Entries(), "startup aborted: startup timeout exceeded"))
}

func TestNewRunner_DefaultFields(t *testing.T) {
	t.Parallel()

	r := NewRunner()
	require.NotNil(t, r)

	require.NotNil(t, r.runFn)
	require.Equal(t, fmt.Sprintf("%p", run), fmt.Sprintf("%p", r.runFn))
}

func TestRun_InvokesAppRunViaContainer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := testlog.New()
	container := dig.New()

	require.NoError(t, container.Provide(func() context.Context {
		return ctx
	}))

	require.NoError(t, container.Provide(func() logx.Logger {
		return rec.Logger()
	}))

	require.NoError(t, container.Provide(func() *pgxpool.Pool {
		return nil
	}))

	require.NoError(t, container.Provide(func() *http.Server {
		return &http.Server{
			Addr:    "127.0.0.1:0",
			Handler: http.NewServeMux(),
		}
	}))

	require.NoError(t, container.Provide(func() sweepInterval {
		return sweepInterval(10 * time.Millisecond)
	}))

	require.NoError(t, container.Provide(func(logger logx.Logger) *distribution.Engine {
		return distribution.NewEngine(
			distribution.Deps{Offers: offers.NewMemory()},
			matching.Policy{Mode: matching.RankByRating},
			distribution.Config{},
			logger,
		)
	}))

	require.NoError(t, container.Provide(func() *kafka.Consumer {
		return nil
	}))

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := run(container)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, hasMsg(rec.Entries(), "shutting down dispatcher..."))
}
