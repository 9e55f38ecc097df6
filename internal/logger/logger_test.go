package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	lines []string
}

func (s *recordingSink) Log(level string, message string) {
	s.lines = append(s.lines, level+" "+message)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: slog.LevelInfo, JSON: true, Writer: &buf})
	l.Debug("hidden")
	l.Info("activated", "apiKey", "abcd****")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"activated"`)
	assert.Contains(t, buf.String(), `"apiKey":"abcd****"`)
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(levelEnv, "WARN")
	assert.Equal(t, slog.LevelWarn, LevelFromEnv(slog.LevelInfo))

	t.Setenv(levelEnv, "nonsense")
	assert.Equal(t, slog.LevelInfo, LevelFromEnv(slog.LevelInfo))
}

func TestSinkHandler(t *testing.T) {
	sink := &recordingSink{}
	l := slog.New(NewSinkHandler(sink, slog.LevelInfo))

	l.Debug("dropped")
	l.With("reporter", "A").WithGroup("req").Warn("failed", "err", "boom")

	assert.Equal(t, []string{"WARN failed reporter=A req.err=boom"}, sink.lines)
}
