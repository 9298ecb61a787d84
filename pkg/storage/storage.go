package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/metaquant/engel-landing/config"
	"github.com/metaquant/engel-landing/pkg/logger"
	"github.com/metaquant/engel-landing/pkg/metrics"
	"go.uber.org/zap"
)

const defaultRegion = "us-east-1"

// Client issues time-limited download links for objects in an
// S3-compatible bucket
type Client struct {
	presigner *s3.PresignClient
	bucket    string
}

// NewClient creates a storage client from the download configuration
func NewClient(cfg config.DownloadConfig) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	opts := s3.Options{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"", // session token not needed
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	client := s3.New(opts)

	logger.Info("Download storage client initialized",
		zap.String("bucket", cfg.Bucket),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("region", region),
	)

	return &Client{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
	}, nil
}

// PresignDownload returns a GET URL for key valid for ttl, and its expiry time
func (c *Client) PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	start := time.Now()
	operation := "presignGetObject"

	if err := ValidateKey(key); err != nil {
		return "", time.Time{}, err
	}

	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(c.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(contentDisposition(key)),
	}, s3.WithPresignExpires(ttl))

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall(ctx, "object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", time.Time{}, fmt.Errorf("failed to presign download: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall(ctx, "object_storage", operation, "success", duration,
		zap.String("key", key),
	)

	return req.URL, start.Add(ttl), nil
}

// ValidateKey rejects object keys that could escape the release prefix
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("object key is required")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("invalid object key: %s", key)
	}
	return nil
}

// contentDisposition makes browsers save the object under its base name
func contentDisposition(key string) string {
	name := key
	if i := strings.LastIndex(key, "/"); i >= 0 {
		name = key[i+1:]
	}
	return fmt.Sprintf("attachment; filename=%q", name)
}
