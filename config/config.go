package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Reviews       ReviewsConfig
	Download      DownloadConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	WebDir         string
	AllowedOrigins []string
	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For is honored
	// when resolving the client address. Empty means use the peer address.
	TrustedProxies []string
}

// ReviewsConfig controls how many testimonials /api/reviews returns per request
type ReviewsConfig struct {
	MinPerRequest int
	MaxPerRequest int
}

// DownloadConfig points at the S3-compatible bucket holding the EA package.
// Leaving Bucket empty keeps /download in placeholder mode.
type DownloadConfig struct {
	Bucket          string
	Key             string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	LinkTTLMinutes  int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	AlloyEndpoint     string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("WEB_DIR", "./web")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://eagoldenengel.com,https://www.eagoldenengel.com")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("REVIEWS_MIN", 8)
	v.SetDefault("REVIEWS_MAX", 12)
	v.SetDefault("DOWNLOAD_S3_KEY", "releases/EA_ENGEL-Xau_3.0.zip")
	v.SetDefault("DOWNLOAD_LINK_TTL_MINUTES", 15)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "engel-landing")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "metaquant")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "engel-landing")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			WebDir:         v.GetString("WEB_DIR"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
			TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),
		},
		Reviews: ReviewsConfig{
			MinPerRequest: v.GetInt("REVIEWS_MIN"),
			MaxPerRequest: v.GetInt("REVIEWS_MAX"),
		},
		Download: DownloadConfig{
			Bucket:          v.GetString("DOWNLOAD_S3_BUCKET"),
			Key:             v.GetString("DOWNLOAD_S3_KEY"),
			Endpoint:        v.GetString("DOWNLOAD_S3_ENDPOINT"),
			Region:          v.GetString("DOWNLOAD_S3_REGION"),
			AccessKeyID:     v.GetString("DOWNLOAD_S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("DOWNLOAD_S3_SECRET_ACCESS_KEY"),
			LinkTTLMinutes:  v.GetInt("DOWNLOAD_LINK_TTL_MINUTES"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			AlloyEndpoint:     v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks
func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks if required configuration values are set.
// The upper review bound is checked against the catalog size when the
// review service is built, since the catalog is not known here.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Server.WebDir == "" {
		return fmt.Errorf("WEB_DIR is required")
	}
	for _, proxy := range c.Server.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}

	if c.Reviews.MinPerRequest < 1 {
		return fmt.Errorf("REVIEWS_MIN must be at least 1, got %d", c.Reviews.MinPerRequest)
	}
	if c.Reviews.MinPerRequest > c.Reviews.MaxPerRequest {
		return fmt.Errorf("REVIEWS_MIN (%d) must not exceed REVIEWS_MAX (%d)",
			c.Reviews.MinPerRequest, c.Reviews.MaxPerRequest)
	}

	if c.Download.Enabled() {
		if c.Download.Key == "" {
			return fmt.Errorf("DOWNLOAD_S3_KEY is required when DOWNLOAD_S3_BUCKET is set")
		}
		if c.Download.AccessKeyID == "" || c.Download.SecretAccessKey == "" {
			return fmt.Errorf("DOWNLOAD_S3_ACCESS_KEY_ID and DOWNLOAD_S3_SECRET_ACCESS_KEY are required when DOWNLOAD_S3_BUCKET is set")
		}
		if c.Download.LinkTTLMinutes <= 0 {
			return fmt.Errorf("DOWNLOAD_LINK_TTL_MINUTES must be positive")
		}
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

func validProxy(s string) bool {
	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		return err == nil
	}
	return net.ParseIP(s) != nil
}

// Enabled reports whether artifact storage is configured for /download
func (d DownloadConfig) Enabled() bool {
	return d.Bucket != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
