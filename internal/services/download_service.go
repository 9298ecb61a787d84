package services

import (
	"context"
	"time"

	"github.com/metaquant/engel-landing/internal/cache"
	"github.com/metaquant/engel-landing/internal/models"
	apperrors "github.com/metaquant/engel-landing/pkg/errors"
	"github.com/metaquant/engel-landing/pkg/logger"
	"github.com/metaquant/engel-landing/pkg/metrics"
	"go.uber.org/zap"
)

const (
	// PlaceholderDownloadMessage is returned while no artifact storage is configured
	PlaceholderDownloadMessage = "Download functionality would be implemented here"

	// ReadyDownloadMessage accompanies a presigned link
	ReadyDownloadMessage = "Your download link is ready"
)

// LinkPresigner issues time-limited download URLs for stored objects
type LinkPresigner interface {
	PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error)
}

// DownloadService answers download requests for the EA package
type DownloadService struct {
	presigner LinkPresigner
	links     *cache.LinkCache
	key       string
	ttl       time.Duration
}

// NewPlaceholderDownloadService creates a service that only acknowledges requests
func NewPlaceholderDownloadService() *DownloadService {
	return &DownloadService{}
}

// NewDownloadService creates a service handing out presigned links for key
func NewDownloadService(presigner LinkPresigner, key string, ttl time.Duration) *DownloadService {
	return &DownloadService{
		presigner: presigner,
		links:     cache.NewLinkCache(ttl),
		key:       key,
		ttl:       ttl,
	}
}

// Enabled reports whether real downloads are configured
func (s *DownloadService) Enabled() bool {
	return s.presigner != nil
}

// InitiateDownload acknowledges a download request. Without storage it returns
// the placeholder message; with storage it returns a presigned link.
func (s *DownloadService) InitiateDownload(ctx context.Context) (*models.DownloadResponse, error) {
	if !s.Enabled() {
		metrics.DownloadRequests.WithLabelValues("placeholder", "success").Inc()
		return &models.DownloadResponse{Message: PlaceholderDownloadMessage}, nil
	}

	if link, ok := s.links.Get(s.key); ok {
		metrics.DownloadRequests.WithLabelValues("presigned", "cached").Inc()
		return readyResponse(link), nil
	}

	url, expiresAt, err := s.presigner.PresignDownload(ctx, s.key, s.ttl)
	if err != nil {
		metrics.DownloadRequests.WithLabelValues("presigned", "error").Inc()
		logger.Error("Failed to create download link",
			zap.String("key", s.key),
			zap.Error(err))
		return nil, apperrors.UnavailableError("object storage", err)
	}

	link := cache.Link{URL: url, ExpiresAt: expiresAt}
	s.links.Set(s.key, link)

	metrics.DownloadRequests.WithLabelValues("presigned", "success").Inc()
	logger.Info("Download link issued",
		zap.String("key", s.key),
		zap.Time("expires_at", expiresAt))

	return readyResponse(link), nil
}

func readyResponse(link cache.Link) *models.DownloadResponse {
	expiresAt := link.ExpiresAt
	return &models.DownloadResponse{
		Message:   ReadyDownloadMessage,
		URL:       link.URL,
		ExpiresAt: &expiresAt,
	}
}
