package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/service"
)

// RegisterRoutes mounts every dashboard endpoint on api. exports may be nil,
// in which case downloads are served without an uploaded copy.
func RegisterRoutes(api *gin.RouterGroup, svc *service.DashboardService, exports ExportPublisher) {
	dashboard := NewDashboardHandler(svc)
	claims := NewClaimsHandler(svc, exports)
	underwriting := NewUnderwritingHandler(svc)
	marketing := NewMarketingHandler(svc)
	eapps := NewEAppHandler(svc, exports)

	api.GET("/overview", dashboard.Overview)
	api.GET("/policies", dashboard.Policies)
	api.GET("/sales", dashboard.Sales)
	api.GET("/dataset", dashboard.Dataset)
	api.POST("/dataset/regenerate", dashboard.Regenerate)

	api.GET("/claims", claims.List)
	api.GET("/claims/fraud", claims.Fraud)
	api.GET("/claims/automation", claims.Automation)
	api.POST("/claims/:id/process", claims.Process)
	api.POST("/claims/:id/investigate", claims.Investigate)
	api.POST("/claims/:id/clear", claims.Clear)
	api.POST("/claims/:id/summary", claims.Summary)
	api.GET("/claims/:id/summary/export", claims.ExportSummary)

	api.GET("/underwriting", underwriting.List)
	api.POST("/underwriting/:id/recommendation", underwriting.Recommendation)
	api.POST("/underwriting/:id/decision", underwriting.Decision)

	api.GET("/marketing/opportunities", marketing.Opportunities)
	api.GET("/marketing/opportunities/:id/scoring", marketing.Scoring)
	api.GET("/marketing/distribution", marketing.Distribution)

	api.GET("/eapps", eapps.List)
	api.GET("/eapps/analytics", eapps.Analytics)
	api.GET("/eapps/checklist/export", eapps.ExportChecklist)
	api.POST("/eapps/assistance", eapps.Assistance)
	api.GET("/eapps/:id", eapps.Get)
}
