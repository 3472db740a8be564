package utils

import (
	"log/slog"
	"os"

	"github.com/14kear/sso-prettyslog/slogpretty/slogpretty"
)

// Environments recognized in config. Anything else falls back to a plain
// debug text handler, which keeps unknown envs loud rather than silent.
const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

// New builds the process logger for the given environment: colored pretty
// output for local development, JSON at info level in production.
func New(env string) *slog.Logger {
	switch env {
	case EnvLocal:
		return newPretty()
	case EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func newPretty() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
