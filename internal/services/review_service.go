package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/metaquant/engel-landing/config"
	"github.com/metaquant/engel-landing/internal/catalog"
	"github.com/metaquant/engel-landing/internal/models"
	apperrors "github.com/metaquant/engel-landing/pkg/errors"
	"github.com/metaquant/engel-landing/pkg/logger"
	"github.com/metaquant/engel-landing/pkg/metrics"
	"github.com/metaquant/engel-landing/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrInvalidSampleBounds is returned when the per-request review bounds cannot
// be satisfied by the catalog
var ErrInvalidSampleBounds = fmt.Errorf("review sample bounds: %w", apperrors.ErrInvalidConfig)

// RandomSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Clock returns the current time
type Clock func() time.Time

// globalRand uses the process-wide math/rand/v2 generator, which is safe for
// concurrent use
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// ReviewOption customizes a ReviewService
type ReviewOption func(*ReviewService)

// WithRandomSource overrides the random source used for sampling
func WithRandomSource(src RandomSource) ReviewOption {
	return func(s *ReviewService) { s.rnd = src }
}

// WithClock overrides the clock used to compute review dates
func WithClock(clock Clock) ReviewOption {
	return func(s *ReviewService) { s.now = clock }
}

// ReviewService draws random testimonial samples from the catalog
type ReviewService struct {
	catalog *catalog.Catalog
	min     int
	max     int
	rnd     RandomSource
	now     Clock
}

// NewReviewService creates a review service, failing if the configured bounds
// do not fit the catalog
func NewReviewService(cat *catalog.Catalog, cfg config.ReviewsConfig, opts ...ReviewOption) (*ReviewService, error) {
	s := &ReviewService{
		catalog: cat,
		min:     cfg.MinPerRequest,
		max:     cfg.MaxPerRequest,
		rnd:     globalRand{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.checkBounds(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *ReviewService) checkBounds() error {
	if s.catalog == nil {
		return fmt.Errorf("no catalog: %w", ErrInvalidSampleBounds)
	}
	if s.min < 1 {
		return fmt.Errorf("lower bound %d must be at least 1: %w", s.min, ErrInvalidSampleBounds)
	}
	if s.min > s.max {
		return fmt.Errorf("lower bound %d exceeds upper bound %d: %w", s.min, s.max, ErrInvalidSampleBounds)
	}
	if s.max > s.catalog.Len() {
		return fmt.Errorf("upper bound %d exceeds catalog size %d: %w", s.max, s.catalog.Len(), ErrInvalidSampleBounds)
	}
	return nil
}

// GetRandomReviews returns between min and max distinct catalog records, each
// with its date computed against the current time
func (s *ReviewService) GetRandomReviews(ctx context.Context) ([]models.ReviewResponseItem, error) {
	if err := s.checkBounds(); err != nil {
		metrics.ReviewsRequests.WithLabelValues("config_error").Inc()
		logger.Error("Review sampling misconfigured", zap.Error(err))
		return nil, err
	}

	_, span := tracing.StartSpan(ctx, "reviews.sample",
		attribute.Int("catalog.size", s.catalog.Len()),
	)
	defer span.End()

	k := s.min + s.rnd.IntN(s.max-s.min+1)
	picked := s.sampleIndexes(k)

	now := s.now()
	items := make([]models.ReviewResponseItem, 0, k)
	for _, i := range picked {
		record := s.catalog.At(i)
		items = append(items, models.ReviewResponseItem{
			ReviewRecord: record,
			Date:         ReviewDate(now, record.DaysAgo),
		})
	}

	span.SetAttributes(attribute.Int("sample.size", k))
	metrics.ReviewsRequests.WithLabelValues("success").Inc()
	metrics.ReviewsServed.Add(float64(k))
	metrics.ReviewsSampleSize.Observe(float64(k))
	logger.Debug("Review sample drawn", zap.Int("size", k))

	return items, nil
}

// sampleIndexes picks k distinct indexes uniformly using a partial
// Fisher-Yates shuffle over a scratch slice
func (s *ReviewService) sampleIndexes(k int) []int {
	n := s.catalog.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// ReviewDate formats now minus daysAgo calendar days as DD/MM/YYYY
func ReviewDate(now time.Time, daysAgo int) string {
	return now.AddDate(0, 0, -daysAgo).Format(models.ReviewDateLayout)
}
