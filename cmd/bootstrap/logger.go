package bootstrap

import (
	"log/slog"
	"os"

	"pcapi/internal/handler/middleware"
	"pcapi/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log, os.Stdout)
}

// CLILoggerModule sends logs to stderr so command output on stdout stays
// machine readable.
var CLILoggerModule = fx.Module("logger/cli",
	fx.Provide(func(cfg config.Config) *slog.Logger {
		return NewCLILogger(cfg.Log)
	}),
)

func NewCLILogger(cfg config.LogConfig) *slog.Logger {
	return middleware.NewLogger(cfg, os.Stderr).Slog()
}
