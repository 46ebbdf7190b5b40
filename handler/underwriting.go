package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/service"
)

type UnderwritingHandler struct {
	svc *service.DashboardService
}

func NewUnderwritingHandler(svc *service.DashboardService) *UnderwritingHandler {
	return &UnderwritingHandler{svc: svc}
}

type decisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// List returns the underwriting case queue
func (h *UnderwritingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cases":     nonNil(h.svc.Dataset().Underwriting),
		"decisions": service.UnderwritingDecisions,
	})
}

func (h *UnderwritingHandler) Recommendation(c *gin.Context) {
	report, err := h.svc.RecommendUnderwriting(entityContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Decision records an underwriter's decision on a case
func (h *UnderwritingHandler) Decision(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.svc.SubmitUnderwritingDecision(entityContext(c), c.Param("id"), req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
