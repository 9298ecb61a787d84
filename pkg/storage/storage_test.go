package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/metaquant/engel-landing/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "release archive", key: "releases/EA_ENGEL-Xau_3.0.zip"},
		{name: "flat key", key: "guide.txt"},
		{name: "empty", key: "", wantErr: true},
		{name: "absolute", key: "/etc/passwd", wantErr: true},
		{name: "traversal", key: "releases/../secrets", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="EA_ENGEL-Xau_3.0.zip"`, contentDisposition("releases/EA_ENGEL-Xau_3.0.zip"))
	assert.Equal(t, `attachment; filename="guide.txt"`, contentDisposition("guide.txt"))
}

func TestNewClient_RequiresBucket(t *testing.T) {
	_, err := NewClient(config.DownloadConfig{})
	require.Error(t, err)
}

// Presigning is computed locally, so no network access is needed
func TestPresignDownload_BuildsSignedURL(t *testing.T) {
	client, err := NewClient(config.DownloadConfig{
		Bucket:          "engel-releases",
		Endpoint:        "https://storage.example.com",
		Region:          "eu-west-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	before := time.Now()
	link, expiresAt, err := client.PresignDownload(context.Background(), "releases/EA_ENGEL-Xau_3.0.zip", 15*time.Minute)
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "storage.example.com", parsed.Host)
	assert.True(t, strings.HasPrefix(parsed.Path, "/engel-releases/releases/EA_ENGEL-Xau_3.0.zip"))
	assert.Equal(t, "900", parsed.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, parsed.Query().Get("X-Amz-Signature"))
	assert.WithinDuration(t, before.Add(15*time.Minute), expiresAt, 5*time.Second)
}

func TestPresignDownload_RejectsBadKey(t *testing.T) {
	client, err := NewClient(config.DownloadConfig{Bucket: "b", AccessKeyID: "id", SecretAccessKey: "s"})
	require.NoError(t, err)

	_, _, err = client.PresignDownload(context.Background(), "../escape", time.Minute)
	require.Error(t, err)
}
