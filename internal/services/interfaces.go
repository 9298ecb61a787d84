package services

import (
	"context"

	"github.com/metaquant/engel-landing/internal/models"
)

// ReviewServiceInterface defines the interface for review sampling
type ReviewServiceInterface interface {
	GetRandomReviews(ctx context.Context) ([]models.ReviewResponseItem, error)
}

// DownloadServiceInterface defines the interface for download initiation
type DownloadServiceInterface interface {
	InitiateDownload(ctx context.Context) (*models.DownloadResponse, error)
	Enabled() bool
}

// Ensure services implement their interfaces
var _ ReviewServiceInterface = (*ReviewService)(nil)
var _ DownloadServiceInterface = (*DownloadService)(nil)
