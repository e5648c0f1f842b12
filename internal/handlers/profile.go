package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/response"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{
		profileService: services.NewProfileService(db),
	}
}

// GetMine returns the caller's own profile
// GET /api/profiles/me
func (h *ProfileHandler) GetMine(c *gin.Context) {
	profile, err := h.profileService.GetByID(middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, profile)
}

// GetByID returns a profile by id
// GET /api/profiles/:id
func (h *ProfileHandler) GetByID(c *gin.Context) {
	profile, err := h.profileService.GetByID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, profile)
}

// UpdateMine applies edits to the caller's own profile
// PUT /api/profiles/me
func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Update(middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, profile)
}
