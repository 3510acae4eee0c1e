// Package logging wires the process logger. Local output goes through a tint
// handler for readable development logs; when a Logstash address is
// configured, JSON records are mirrored to its TCP input as well.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New builds the root slog.Logger. logstashAddr may be empty; a non-empty
// address adds a best-effort TCP mirror that drops records while Logstash is
// unreachable. The returned closer is nil when no mirror is active.
func New(level slog.Level, logstashAddr string) (*slog.Logger, io.Closer) {
	local := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})

	if strings.TrimSpace(logstashAddr) == "" {
		return slog.New(local), nil
	}

	shipper, err := NewTCPShipper(logstashAddr)
	if err != nil {
		logger := slog.New(local)
		logger.Warn("logstash mirror disabled", "error", err)
		return logger, nil
	}

	remote := slog.NewJSONHandler(shipper, &slog.HandlerOptions{Level: level})
	return slog.New(fanoutHandler{local, remote}), shipper
}

// fanoutHandler forwards each record to every wrapped handler.
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, hh := range h {
		if !hh.Enabled(ctx, record.Level) {
			continue
		}
		if err := hh.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, hh := range h {
		out[i] = hh.WithAttrs(attrs)
	}
	return out
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(h))
	for i, hh := range h {
		out[i] = hh.WithGroup(name)
	}
	return out
}
