package handler

import (
	"net/http"

	likeDto "github.com/danevairena/SocialMediaBackend/internal/modules/like/dto"
	like "github.com/danevairena/SocialMediaBackend/internal/modules/like/service"
	"github.com/danevairena/SocialMediaBackend/pkg/response"
	"github.com/danevairena/SocialMediaBackend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	service like.LikeService
}

func NewLikeHandler(service like.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

func (h *LikeHandler) Like(c *gin.Context) {
	var req likeDto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	if err := h.service.Like(c.Request.Context(), req.PostID, req.UserID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post liked"})
}

func (h *LikeHandler) Unlike(c *gin.Context) {
	var req likeDto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	if err := h.service.Unlike(c.Request.Context(), req.PostID, req.UserID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post unliked"})
}

func (h *LikeHandler) Likers(c *gin.Context) {
	postID, err := response.ParamID(c, "postId")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	likers, err := h.service.ListLikers(c.Request.Context(), postID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, likers)
}
