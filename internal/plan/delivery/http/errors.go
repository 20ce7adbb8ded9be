package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/plan"
	"smart-day-planner/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Both the
// never-loaded and the failed-this-request classifier cases surface the same
// 500 body, since the route has no degraded-mode sentiment.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrClassifierUnavailable), errors.Is(err, plan.ErrClassifyFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrMsgModelNotLoaded})
	default:
		response.InternalError(c, err)
	}
}
