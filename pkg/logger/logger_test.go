package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = prev })
	return logs
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud", Environment: "development"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitialize_ProductionWithLogDir(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	dir := t.TempDir()
	require.NoError(t, Initialize(Config{Level: "info", LogDir: dir, Environment: "production", ServiceName: "engel-landing"}))
	Info("hello")
	Sync()
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	logs := withObserver(t)

	LogHTTPRequest(context.Background(), "GET", "/api/reviews", 200, 0.01)
	LogHTTPRequest(context.Background(), "GET", "/missing", 404, 0.01)
	LogHTTPRequest(context.Background(), "GET", "/download", 502, 0.01)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "/api/reviews", entries[0].ContextMap()["path"])
}

func TestLogHTTPRequest_TraceFields(t *testing.T) {
	logs := withObserver(t)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	LogHTTPRequest(ctx, "GET", "/", 200, 0.001)

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", fields["trace_id"])
	assert.Equal(t, "0102030405060708", fields["span_id"])
}

func TestLogAPICall_ErrorStatus(t *testing.T) {
	logs := withObserver(t)

	LogAPICall(context.Background(), "s3", "presignGetObject", "error", 0.2)
	LogError(errors.New("boom"), "something failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "API call failed", entries[0].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}
