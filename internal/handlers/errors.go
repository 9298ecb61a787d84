package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/metaquant/engel-landing/internal/middleware"
)

// errorResponse is the body of every non-2xx JSON reply. RequestID lets a
// visitor quote the failing request when reporting a problem.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so errcheck is suppressed.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError logs err through the request log and replies with message
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, errorResponse{
		Error:     message,
		RequestID: middleware.RequestID(c),
	})
}
