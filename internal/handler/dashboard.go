package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Priyank118/fdanalytics/internal/service"
	"github.com/Priyank118/fdanalytics/pkg/response"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Register(r *gin.RouterGroup) {
	r.GET("/teams/:team_id/dashboard", h.get)
}

func (h *DashboardHandler) get(c *gin.Context) {
	stats, err := h.svc.GetDashboardStats(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, stats)
}
