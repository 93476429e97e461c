package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"drillflow-dispatch/internal/service/orders"
	testlog "drillflow-dispatch/internal/testutil"
)

type fakeGroup struct{}

func (fakeGroup) Consume(context.Context, []string, sarama.ConsumerGroupHandler) error { return nil }
func (fakeGroup) Errors() <-chan error {
	ch := make(chan error)
	close(ch)
	return ch
}
func (fakeGroup) Close() error              { return nil }
func (fakeGroup) Pause(map[string][]int32)  {}
func (fakeGroup) Resume(map[string][]int32) {}
func (fakeGroup) PauseAll()                 {}
func (fakeGroup) ResumeAll()                {}

type stoppingGroup struct {
	fakeGroup
	calls  int
	cancel context.CancelFunc
}

func (g *stoppingGroup) Consume(context.Context, []string, sarama.ConsumerGroupHandler) error {
	g.calls++
	g.cancel()
	return nil
}

func TestNewConsumer_SkipsWhenNoKafkaConfig(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	got, err := NewConsumer(rec.Logger(), nil, "gid", "topic", func(context.Context, orders.Event) error { return nil })
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewConsumer(rec.Logger(), []string{"b:9092"}, "", "topic", nil)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewConsumer(rec.Logger(), []string{"b:9092"}, "gid", "   ", nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestNewConsumer_ReturnsErrorWhenSaramaFails(t *testing.T) {
	t.Parallel()

	orig := newConsumerGroup
	t.Cleanup(func() { newConsumerGroup = orig })

	sentinel := errors.New("boom")
	newConsumerGroup = func(_ []string, _ string, _ *sarama.Config) (sarama.ConsumerGroup, error) {
		return nil, sentinel
	}

	rec := testlog.New()
	got, err := NewConsumer(rec.Logger(), []string{"b:9092"}, "gid", "topic", nil)
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, got)
}

func TestNewConsumer_BuildsWithGroup(t *testing.T) {
	t.Parallel()

	orig := newConsumerGroup
	t.Cleanup(func() { newConsumerGroup = orig })

	var gotCfg *sarama.Config
	newConsumerGroup = func(brokers []string, groupID string, cfg *sarama.Config) (sarama.ConsumerGroup, error) {
		require.Equal(t, []string{"b:9092"}, brokers)
		require.Equal(t, "dispatch", groupID)
		gotCfg = cfg
		return fakeGroup{}, nil
	}

	got, err := NewConsumer(testlog.New().Logger(), []string{"b:9092"}, "dispatch", "orders.events", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, sarama.OffsetOldest, gotCfg.Consumer.Offsets.Initial)
	require.Equal(t, defaultHandleAttempts, got.attempts)
	require.NoError(t, got.Close())
}

func TestConsumer_RunStopsWhenContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	g := &stoppingGroup{cancel: cancel}
	c := &Consumer{group: g, topic: "t", logger: testlog.New().Logger()}

	err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, g.calls)
}

func TestConsumer_NilIsNoop(t *testing.T) {
	t.Parallel()

	var c *Consumer
	require.NoError(t, c.Run(context.Background()))
	require.NoError(t, c.Close())
}
