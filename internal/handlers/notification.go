package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/response"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List returns the caller's latest notifications with the unread count
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	userID := middleware.GetUserID(c)

	notifications, err := h.notificationService.ListLatest(userID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	unread, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkRead marks one notification as read
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Param("id"), middleware.GetUserID(c)); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "marked read"})
}

// MarkAllRead marks every unread notification as read
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.notificationService.MarkAllRead(middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"marked": n})
}
