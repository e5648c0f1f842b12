package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(db *gorm.DB, notifier *services.NotificationService) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db, notifier),
	}
}

// List returns active projects with the caller's badges
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.projectService.List(&req, middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// GetByID returns a project detail view
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	detail, err := h.projectService.GetDetail(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, detail)
}

// Create creates a new project with its creator membership
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(&req, middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, project)
}

// UpdateStatus applies an owner-initiated status transition
// PATCH /api/projects/:id/status
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req services.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.UpdateStatus(c.Param("id"), middleware.GetUserID(c), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, project)
}
