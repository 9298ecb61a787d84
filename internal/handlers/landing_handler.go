package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/metaquant/engel-landing/internal/models"
	"github.com/metaquant/engel-landing/pkg/metrics"
)

const (
	productName = "EA ENGEL-Xau 3.0"
	studioName  = "MetaQuant Studio"
)

// LandingHandler renders the marketing page
type LandingHandler struct {
	downloadReady bool
	now           func() time.Time
}

// NewLandingHandler creates a landing page handler
func NewLandingHandler(downloadReady bool) *LandingHandler {
	return &LandingHandler{downloadReady: downloadReady, now: time.Now}
}

// Index handles GET /
func (h *LandingHandler) Index(c *gin.Context) {
	metrics.LandingPageViews.Inc()

	c.HTML(http.StatusOK, "index.html", models.LandingPageData{
		ProductName:   productName,
		Studio:        studioName,
		Year:          h.now().Year(),
		DownloadReady: h.downloadReady,
	})
}
