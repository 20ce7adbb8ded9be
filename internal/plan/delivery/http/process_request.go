package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/plan"
)

var errEmptyText = errors.New("text is required")

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

type planReq struct {
	Text string `json:"text"`
}

func (r planReq) validate() error {
	if r.Text == "" {
		return errEmptyText
	}
	return nil
}

func (r planReq) toInput() plan.PlanInput {
	return plan.PlanInput{Text: r.Text}
}
