package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metaquant/engel-landing/internal/services"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	service services.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service services.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GetReviews handles GET /api/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	items, err := h.service.GetRandomReviews(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load reviews", err)
		return
	}

	// Dates are relative to the request time, so the body must not be cached
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, items)
}
