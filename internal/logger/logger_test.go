package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"wqtc-api/internal/logger"

	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.Default()
	logger.SetLogger(logger.New(&buf, level))
	t.Cleanup(func() { logger.SetLogger(prev) })
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := captureLogger(t, "info")

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"key":"value"`)
	assert.Contains(t, output, `"count":42`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLogger(t, "error")

	logger.Info("dropped")
	logger.Warn("dropped too")
	logger.Error("error occurred", slog.String("error", "test error"))

	output := buf.String()
	assert.NotContains(t, output, "dropped")
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_Debug(t *testing.T) {
	buf := captureLogger(t, "debug")

	logger.Debug("debug message")

	assert.Contains(t, buf.String(), "debug message")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestLogger_WithRequestID(t *testing.T) {
	buf := captureLogger(t, "info")

	logger.WithRequestID("req-123").Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, `"request_id":"req-123"`)
}

func TestLogger_WithFields(t *testing.T) {
	buf := captureLogger(t, "info")

	logger.WithFields(
		slog.String("filename", "videos.xlsx"),
		slog.Int("rows", 12),
	).Info("preview built")

	output := buf.String()
	assert.Contains(t, output, "videos.xlsx")
	assert.Contains(t, output, `"rows":12`)
}

func TestLogger_Context(t *testing.T) {
	buf := captureLogger(t, "info")

	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))

	ctx := logger.IntoContext(context.Background(), logger.WithRequestID("req-9"))
	logger.FromContext(ctx).Info("scoped")

	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}
