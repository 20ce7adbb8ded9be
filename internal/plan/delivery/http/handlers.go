package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Plan godoc
// @Summary     Plan the user's day
// @Description Classifies sentiment of the text, extracts tasks with time windows and asks the LLM for wellness-break suggestions.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Free-form description of the day"
// @Success     200  {object} planResp
// @Failure     400  {object} map[string]string "No text provided"
// @Failure     500  {object} map[string]string "Sentiment model not loaded"
// @Router      /api/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgNoText})
		return
	}

	output, err := h.uc.Plan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "plan.delivery.Plan: uc.Plan: %v", err)
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newPlanResp(output))
}

// Live godoc
// @Summary     Liveness string
// @Description Plain-text liveness message, always 200.
// @Tags        Health
// @Produce     plain
// @Success     200 {string} string
// @Router      / [GET]
func (h *handler) Live(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}
