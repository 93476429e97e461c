package app

import (
	"fmt"
	"os"
	"strings"

	"drillflow-dispatch/internal/config"
	"drillflow-dispatch/internal/logx"
)

// NewLogger builds the process logger: zap JSON in production, slog text for local runs.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	switch strings.ToLower(cfg.Log.Format) {
	case "", "json":
		return logx.NewZapProduction(cfg.Log.Level)
	case "text":
		return logx.NewSlogText(os.Stdout, cfg.Log.Level)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
}
