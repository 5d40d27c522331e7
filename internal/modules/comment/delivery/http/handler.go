package handler

import (
	"net/http"

	commentDto "github.com/danevairena/SocialMediaBackend/internal/modules/comment/dto"
	comment "github.com/danevairena/SocialMediaBackend/internal/modules/comment/service"
	"github.com/danevairena/SocialMediaBackend/pkg/response"
	"github.com/danevairena/SocialMediaBackend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service comment.CommentService
}

func NewCommentHandler(service comment.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req commentDto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, err := response.ParamID(c, "postId")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	comments, err := h.service.ListForPost(c.Request.Context(), postID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
