package handler

import (
	"net/http"

	msgDto "github.com/danevairena/SocialMediaBackend/internal/modules/message/dto"
	message "github.com/danevairena/SocialMediaBackend/internal/modules/message/service"
	"github.com/danevairena/SocialMediaBackend/pkg/response"
	"github.com/danevairena/SocialMediaBackend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service message.MessageService
}

func NewMessageHandler(service message.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req msgDto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	msg, err := h.service.Send(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) GetHistory(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	peerID, err := response.ParamID(c, "userId")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	messages, err := h.service.History(c.Request.Context(), userID, peerID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkSeen(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	peerID, err := response.ParamID(c, "userId")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	updated, err := h.service.MarkSeen(c.Request.Context(), userID, peerID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgDto.MarkSeenResponse{Updated: updated})
}

func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
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

	c.JSON(http.StatusOK, msgDto.UnreadCountResponse{Count: count})
}

func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	conversations, err := h.service.ListConversations(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}
