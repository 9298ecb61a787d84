package models

import "time"

// DownloadResponse acknowledges a download request. URL and ExpiresAt are only
// set when artifact storage is configured.
type DownloadResponse struct {
	Message   string     `json:"message"`
	URL       string     `json:"url,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
