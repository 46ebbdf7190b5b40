package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/service"
)

type MarketingHandler struct {
	svc *service.DashboardService
}

func NewMarketingHandler(svc *service.DashboardService) *MarketingHandler {
	return &MarketingHandler{svc: svc}
}

// Opportunities returns opportunities best-scored first
func (h *MarketingHandler) Opportunities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"opportunities": h.svc.Opportunities()})
}

func (h *MarketingHandler) Scoring(c *gin.Context) {
	scoring, err := h.svc.LeadScoring(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scoring)
}

func (h *MarketingHandler) Distribution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"distribution": h.svc.OpportunityDistribution()})
}
