package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080", WebDir: "./web", AllowedOrigins: []string{"https://eagoldenengel.com"}},
		Reviews: ReviewsConfig{MinPerRequest: 8, MaxPerRequest: 12},
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "release mode",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name:     "missing origins",
			mutate:   func(c *Config) { c.Server.AllowedOrigins = nil },
			errorMsg: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:     "empty web dir",
			mutate:   func(c *Config) { c.Server.WebDir = "" },
			errorMsg: "WEB_DIR is required",
		},
		{
			name:   "trusted proxies",
			mutate: func(c *Config) { c.Server.TrustedProxies = []string{"10.0.0.1", "172.16.0.0/12", "::1"} },
		},
		{
			name:     "malformed trusted proxy",
			mutate:   func(c *Config) { c.Server.TrustedProxies = []string{"10.0.0.0/33"} },
			errorMsg: "TRUSTED_PROXIES",
		},
		{
			name:     "zero lower bound",
			mutate:   func(c *Config) { c.Reviews.MinPerRequest = 0 },
			errorMsg: "REVIEWS_MIN must be at least 1",
		},
		{
			name: "inverted bounds",
			mutate: func(c *Config) {
				c.Reviews.MinPerRequest = 10
				c.Reviews.MaxPerRequest = 5
			},
			errorMsg: "must not exceed REVIEWS_MAX",
		},
		{
			name:     "bucket without credentials",
			mutate:   func(c *Config) { c.Download = DownloadConfig{Bucket: "b", Key: "k", LinkTTLMinutes: 15} },
			errorMsg: "DOWNLOAD_S3_ACCESS_KEY_ID",
		},
		{
			name: "bucket without key",
			mutate: func(c *Config) {
				c.Download = DownloadConfig{Bucket: "b", AccessKeyID: "id", SecretAccessKey: "s", LinkTTLMinutes: 15}
			},
			errorMsg: "DOWNLOAD_S3_KEY is required",
		},
		{
			name: "non-positive link ttl",
			mutate: func(c *Config) {
				c.Download = DownloadConfig{Bucket: "b", Key: "k", AccessKeyID: "id", SecretAccessKey: "s"}
			},
			errorMsg: "DOWNLOAD_LINK_TTL_MINUTES",
		},
		{
			name: "complete storage config",
			mutate: func(c *Config) {
				c.Download = DownloadConfig{Bucket: "b", Key: "k", AccessKeyID: "id", SecretAccessKey: "s", LinkTTLMinutes: 15}
			},
		},
		{
			name:     "profiling without endpoint",
			mutate:   func(c *Config) { c.Profiling.Enabled = true },
			errorMsg: "O11Y_PROFILING_ENDPOINT is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REVIEWS_MIN", "")
	t.Setenv("REVIEWS_MAX", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Reviews.MinPerRequest)
	assert.Equal(t, 12, cfg.Reviews.MaxPerRequest)
	assert.False(t, cfg.Download.Enabled())
	assert.Empty(t, cfg.Server.TrustedProxies)
	assert.Equal(t, []string{"https://eagoldenengel.com", "https://www.eagoldenengel.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REVIEWS_MIN", "3")
	t.Setenv("REVIEWS_MAX", "5")
	t.Setenv("ALLOWED_CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Reviews.MinPerRequest)
	assert.Equal(t, 5, cfg.Reviews.MaxPerRequest)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidBounds(t *testing.T) {
	t.Setenv("REVIEWS_MIN", "12")
	t.Setenv("REVIEWS_MAX", "8")

	_, err := Load()
	require.Error(t, err)
}
