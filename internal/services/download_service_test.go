package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/metaquant/engel-landing/internal/services"
	apperrors "github.com/metaquant/engel-landing/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const releaseKey = "releases/EA_ENGEL-Xau_3.0.zip"

func TestDownloadService_Placeholder(t *testing.T) {
	service := services.NewPlaceholderDownloadService()

	assert.False(t, service.Enabled())

	resp, err := service.InitiateDownload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, services.PlaceholderDownloadMessage, resp.Message)
	assert.Empty(t, resp.URL)
	assert.Nil(t, resp.ExpiresAt)
}

func TestDownloadService_PresignsAndCaches(t *testing.T) {
	presigner := new(MockLinkPresigner)
	expires := time.Now().Add(15 * time.Minute)
	presigner.On("PresignDownload", mock.Anything, releaseKey, 15*time.Minute).
		Return("https://storage.example.com/ea.zip?X-Amz-Signature=abc", expires, nil).Once()

	service := services.NewDownloadService(presigner, releaseKey, 15*time.Minute)
	assert.True(t, service.Enabled())

	first, err := service.InitiateDownload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, services.ReadyDownloadMessage, first.Message)
	assert.Equal(t, "https://storage.example.com/ea.zip?X-Amz-Signature=abc", first.URL)
	require.NotNil(t, first.ExpiresAt)
	assert.True(t, expires.Equal(*first.ExpiresAt))

	second, err := service.InitiateDownload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.URL, second.URL)

	presigner.AssertExpectations(t)
}

func TestDownloadService_StorageError(t *testing.T) {
	presigner := new(MockLinkPresigner)
	cause := errors.New("signing failed")
	presigner.On("PresignDownload", mock.Anything, releaseKey, time.Minute).
		Return("", time.Time{}, cause).Once()

	service := services.NewDownloadService(presigner, releaseKey, time.Minute)

	resp, err := service.InitiateDownload(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	assert.ErrorIs(t, err, cause)
	presigner.AssertExpectations(t)
}
