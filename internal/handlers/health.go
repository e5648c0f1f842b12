package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/internal/services"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Queue mode
	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	// SSE connections
	sseClients := services.GetEventHub().ClientCount()

	// Pending workload
	var pendingApplications int64
	models.GetDB().Model(&models.ProjectApplication{}).
		Where("status = ?", models.ApplicationPending).
		Count(&pendingApplications)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "teamswap",
		"components": gin.H{
			"database":             dbStatus,
			"queue_mode":           queueMode,
			"sse_clients":          sseClients,
			"pending_applications": pendingApplications,
		},
	})
}
