package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithWriter(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{name: "text", format: "text", want: []string{"roster generated", "department=config"}},
		{name: "json", format: "JSON", want: []string{`"msg":"roster generated"`, `"department":"config"`}},
		{name: "unknown falls back to text", format: "xml", want: []string{"department=config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(slog.LevelInfo, tt.format, &buf)

			logger.Info("roster generated", "department", "config")

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("swap applied")
	logger.Warn("no eligible replacement")

	assert.NotContains(t, buf.String(), "swap applied")
	assert.Contains(t, buf.String(), "no eligible replacement")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	fallback := Discard()
	logger := NewLoggerWithWriter(slog.LevelInfo, "text", &buf)

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx, fallback))

	assert.Equal(t, ctx, ContextWithLogger(ctx, nil))
	assert.NotNil(t, FromContext(context.Background(), nil))
}
