package tracing

import (
	"context"
	"testing"

	"github.com/metaquant/engel-landing/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), config.ObservabilityConfig{ServiceName: "engel-landing"}, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan_NoopBeforeInit(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "reviews.sample", attribute.Int("sample.size", 10))
	defer span.End()

	assert.NotNil(t, ctx)
	assert.False(t, span.SpanContext().IsValid())
}
