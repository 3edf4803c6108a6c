package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/agendaamiga/agenda-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Format "json" is for production; "text" adds source locations.
// Level is debug, info, warn or error, case-insensitive, defaulting to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: maskSecrets,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("version", Version))
}

// maskSecrets keeps only a short prefix of share link tokens.
func maskSecrets(_ []string, a slog.Attr) slog.Attr {
	if a.Key != "token" || a.Value.Kind() != slog.KindString {
		return a
	}
	v := a.Value.String()
	if len(v) > 4 {
		v = v[:4] + "***"
	}
	return slog.String(a.Key, v)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
