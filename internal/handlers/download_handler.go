package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metaquant/engel-landing/internal/services"
	apperrors "github.com/metaquant/engel-landing/pkg/errors"
)

// DownloadHandler handles GET /download
type DownloadHandler struct {
	service services.DownloadServiceInterface
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(service services.DownloadServiceInterface) *DownloadHandler {
	return &DownloadHandler{service: service}
}

// InitiateDownload handles GET /download
func (h *DownloadHandler) InitiateDownload(c *gin.Context) {
	resp, err := h.service.InitiateDownload(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnavailable) {
			respondError(c, http.StatusBadGateway, "Download is temporarily unavailable", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
