package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/model"
	"github.com/mkumar84/Insurance-Dashboard/service"
)

// DashboardHandler serves the overview, policy, sales and dataset endpoints.
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview returns the executive overview page data
func (h *DashboardHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Overview())
}

func (h *DashboardHandler) Policies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"policies": nonNil(h.svc.Dataset().Policies)})
}

func (h *DashboardHandler) Sales(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SalesPerformance())
}

// Dataset returns the whole session dataset
func (h *DashboardHandler) Dataset(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dataset())
}

// Regenerate discards the session dataset and generates a new one
func (h *DashboardHandler) Regenerate(c *gin.Context) {
	ds, err := h.svc.Regenerate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"generated_at": ds.GeneratedAt.Format(time.RFC3339),
		"counts":       datasetCounts(ds),
	})
}

func datasetCounts(ds *model.Dataset) gin.H {
	return gin.H{
		"policies":      len(ds.Policies),
		"claims":        len(ds.Claims),
		"underwriting":  len(ds.Underwriting),
		"opportunities": len(ds.Opportunities),
		"sales":         len(ds.Sales),
		"eapplications": len(ds.EApplications),
	}
}

// nonNil keeps empty lists encoding as [] instead of null.
func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
