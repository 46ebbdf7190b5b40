package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/service"
)

type EAppHandler struct {
	svc     *service.DashboardService
	exports ExportPublisher
}

// NewEAppHandler creates the e-application handler. exports may be nil.
func NewEAppHandler(svc *service.DashboardService, exports ExportPublisher) *EAppHandler {
	return &EAppHandler{svc: svc, exports: exports}
}

func (h *EAppHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"applications": nonNil(h.svc.Dataset().EApplications)})
}

// Get returns one application with its completion fraction
func (h *EAppHandler) Get(c *gin.Context) {
	detail, err := h.svc.EApplication(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *EAppHandler) Assistance(c *gin.Context) {
	help, err := h.svc.AssistEApplication(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, help)
}

func (h *EAppHandler) ExportChecklist(c *gin.Context) {
	sendExport(c, h.exports, service.ChecklistExport())
}

func (h *EAppHandler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.EAppAnalytics())
}
