package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/plan"
	"smart-day-planner/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	Plan(c *gin.Context)
	Live(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc plan.UseCase
}

// New creates a new HTTP handler for the plan domain.
func New(l log.Logger, uc plan.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
