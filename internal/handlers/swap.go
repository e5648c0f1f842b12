package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/response"
	"gorm.io/gorm"
)

type SwapHandler struct {
	swapService *services.SwapService
}

func NewSwapHandler(db *gorm.DB, notifier *services.NotificationService) *SwapHandler {
	return &SwapHandler{
		swapService: services.NewSwapService(db, notifier),
	}
}

// List returns the open swap board
// GET /api/swaps
func (h *SwapHandler) List(c *gin.Context) {
	var req services.SwapListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.swapService.List(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// ListMine returns every swap the caller is a party to
// GET /api/swaps/mine
func (h *SwapHandler) ListMine(c *gin.Context) {
	swaps, err := h.swapService.ListMine(middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, swaps)
}

// Create proposes a new skill swap
// POST /api/swaps
func (h *SwapHandler) Create(c *gin.Context) {
	var req services.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	swap, err := h.swapService.Create(&req, middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, swap)
}

// Respond accepts or rejects a pending swap
// POST /api/swaps/:id/respond
func (h *SwapHandler) Respond(c *gin.Context) {
	var req services.RespondSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	swap, err := h.swapService.Respond(c.Param("id"), middleware.GetUserID(c), req.Decision)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, swap)
}

// Complete marks an accepted swap as done
// POST /api/swaps/:id/complete
func (h *SwapHandler) Complete(c *gin.Context) {
	swap, err := h.swapService.Complete(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, swap)
}

// Cancel withdraws the caller's own swap
// POST /api/swaps/:id/cancel
func (h *SwapHandler) Cancel(c *gin.Context) {
	swap, err := h.swapService.Cancel(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, swap)
}
