package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLinkPresigner is a mock implementation of LinkPresigner
type MockLinkPresigner struct {
	mock.Mock
}

func (m *MockLinkPresigner) PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// sequenceSource replays fixed IntN results, clamped into range
type sequenceSource struct {
	values []int
	pos    int
}

func (s *sequenceSource) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}
