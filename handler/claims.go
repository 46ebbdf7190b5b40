package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/service"
)

type ClaimsHandler struct {
	svc     *service.DashboardService
	exports ExportPublisher
}

// NewClaimsHandler creates the claims handler. exports may be nil.
func NewClaimsHandler(svc *service.DashboardService, exports ExportPublisher) *ClaimsHandler {
	return &ClaimsHandler{svc: svc, exports: exports}
}

// List returns the claim queue
func (h *ClaimsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"claims": nonNil(h.svc.Dataset().Claims)})
}

func (h *ClaimsHandler) Fraud(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indicators": h.svc.FraudIndicators()})
}

func (h *ClaimsHandler) Automation(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AutomationStats())
}

// Process runs the simulated AI processing recommendation for a claim
func (h *ClaimsHandler) Process(c *gin.Context) {
	res, err := h.svc.ProcessClaim(entityContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ClaimsHandler) Investigate(c *gin.Context) {
	h.flag(c, true)
}

func (h *ClaimsHandler) Clear(c *gin.Context) {
	h.flag(c, false)
}

func (h *ClaimsHandler) flag(c *gin.Context, investigate bool) {
	res, err := h.svc.FlagClaim(entityContext(c), c.Param("id"), investigate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Summary generates the document summary report for a claim
func (h *ClaimsHandler) Summary(c *gin.Context) {
	report, err := h.svc.SummarizeClaim(entityContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ClaimsHandler) ExportSummary(c *gin.Context) {
	exp, err := h.svc.ClaimSummaryExport(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendExport(c, h.exports, exp)
}
