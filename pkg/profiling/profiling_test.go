package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/metaquant/engel-landing/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileTypes_Default(t *testing.T) {
	got, err := parseProfileTypes("  ")
	require.NoError(t, err)
	assert.Equal(t, defaultProfileTypes, got)
}

func TestParseProfileTypes_DedupesAndExpands(t *testing.T) {
	got, err := parseProfileTypes("cpu, mutex,CPU,")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseProfileTypes_Invalid(t *testing.T) {
	_, err := parseProfileTypes("cpu,heapdump")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported O11Y_PROFILING_SAMPLE_TYPES")
}

func TestApplicationName(t *testing.T) {
	obs := config.ObservabilityConfig{
		ServiceName:      "engel-landing",
		ServiceNamespace: "metaquant",
		ServiceVersion:   "1.0.0",
	}

	assert.Equal(t,
		"engel-landing{service_name=engel-landing,namespace=metaquant,environment=production,service_version=1.0.0}",
		applicationName("", obs, "production"))

	obs.ServiceInstanceID = "pod-1"
	assert.Equal(t,
		"site{service_name=engel-landing,namespace=metaquant,environment=staging,service_version=1.0.0,instance=pod-1}",
		applicationName("site", obs, "staging"))
}

func TestInitProfiler_Disabled(t *testing.T) {
	stop, err := InitProfiler(config.ProfilingConfig{}, config.ObservabilityConfig{}, "test")
	require.NoError(t, err)
	stop()
}

func TestInitProfiler_EnabledWithoutEndpoint(t *testing.T) {
	_, err := InitProfiler(config.ProfilingConfig{Enabled: true}, config.ObservabilityConfig{}, "test")
	require.Error(t, err)
}
