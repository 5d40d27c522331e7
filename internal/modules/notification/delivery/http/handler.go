package handler

import (
	"net/http"

	notifDto "github.com/danevairena/SocialMediaBackend/internal/modules/notification/dto"
	notifService "github.com/danevairena/SocialMediaBackend/internal/modules/notification/service"
	"github.com/danevairena/SocialMediaBackend/pkg/response"
	"github.com/danevairena/SocialMediaBackend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service notifService.NotificationService
}

func NewNotificationHandler(service notifService.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	notifications, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifDto.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), userID, id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	updated, err := h.service.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifDto.MarkReadResponse{Updated: updated})
}

// CreateNotification is the manual creation endpoint; it validates like the internal fan-out.
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	if _, err := response.GetUserID(c); err != nil {
		response.ResponseError(c, err)
		return
	}

	var req notifDto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	notification, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notifDto.CreatedNotificationResponse{
		ID:         notification.ID,
		ReceiverID: notification.ReceiverID,
		SenderID:   notification.SenderID,
		Type:       string(notification.Type),
		PostID:     notification.PostID,
		IsRead:     notification.IsRead,
		CreatedAt:  notification.CreatedAt,
	})
}
