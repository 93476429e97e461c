//go:build integration

package app_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"drillflow-dispatch/internal/app"
	"drillflow-dispatch/internal/config"
	"drillflow-dispatch/internal/service/distribution"
)

func TestMustBuildContainer_Integration(t *testing.T) {
	oldFlags, oldArgs := pflag.CommandLine, os.Args
	pflag.CommandLine = pflag.NewFlagSet("dispatcher", pflag.ContinueOnError)
	os.Args = []string{"dispatcher"}
	t.Cleanup(func() {
		pflag.CommandLine = oldFlags
		os.Args = oldArgs
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := app.MustBuildContainer(ctx)
	require.NotNil(t, c)

	err := c.Invoke(func(cfg *config.Config, pool *pgxpool.Pool, engine *distribution.Engine) {
		require.NotNil(t, cfg)
		require.NotNil(t, pool)
		require.NotNil(t, engine)
	})
	require.NoError(t, err)
}
