package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const levelEnv = "METRICA_LOG_LEVEL"

type Options struct {
	Level  slog.Level
	JSON   bool
	Writer io.Writer
}

func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// LevelFromEnv reads METRICA_LOG_LEVEL (debug, info, warn, error), falling
// back to def.
func LevelFromEnv(def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(levelEnv))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}

// Sink is implemented by the native side to receive log lines, e.g. to
// forward them to Logcat or os_log.
type Sink interface {
	Log(level string, message string)
}

// SinkHandler is a slog.Handler writing formatted records to a Sink.
type SinkHandler struct {
	sink  Sink
	level slog.Leveler
	attrs []slog.Attr
	group string
}

func NewSinkHandler(sink Sink, level slog.Leveler) *SinkHandler {
	return &SinkHandler{sink: sink, level: level}
}

func (h *SinkHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *SinkHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	write := func(a slog.Attr) {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.Resolve().String())
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if !a.Equal(slog.Attr{}) {
			write(h.qualify(a))
		}
		return true
	})

	h.sink.Log(r.Level.String(), b.String())
	return nil
}

// WithAttrs qualifies attrs with the current group right away, so groups
// opened later do not apply to them.
func (h *SinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, h.qualify(a))
	}
	return &next
}

func (h *SinkHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func (h *SinkHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if next.group != "" {
		next.group += "." + name
	} else {
		next.group = name
	}
	return &next
}
