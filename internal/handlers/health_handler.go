package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	catalogSize func() int
}

func NewHealthHandler(catalogSize func() int) *HealthHandler {
	return &HealthHandler{
		catalogSize: catalogSize,
	}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	size := h.catalogSize()
	if size == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "review catalog is empty",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"reviews": size,
	})
}
