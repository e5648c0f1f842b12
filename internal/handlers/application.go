package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/response"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(db *gorm.DB, notifier *services.NotificationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: services.NewApplicationService(db, notifier),
	}
}

// Apply submits an application to join a project
// POST /api/projects/:id/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req services.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	application, err := h.applicationService.Apply(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, application)
}

// Review accepts or rejects a pending application
// POST /api/applications/:id/review
func (h *ApplicationHandler) Review(c *gin.Context) {
	var req services.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	application, err := h.applicationService.Review(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, application)
}

// Withdraw retracts the caller's own pending application
// POST /api/applications/:id/withdraw
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	application, err := h.applicationService.Withdraw(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, application)
}

// ListMine returns the caller's applications
// GET /api/applications/mine
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationService.ListMine(middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, applications)
}
