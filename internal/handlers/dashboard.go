package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/response"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
	}
}

// GetStats returns the caller's activity summary
// GET /api/dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	resp, err := h.dashboardService.GetStats(middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, resp)
}
