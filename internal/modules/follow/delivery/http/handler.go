package handler

import (
	"net/http"

	followDto "github.com/danevairena/SocialMediaBackend/internal/modules/follow/dto"
	follow "github.com/danevairena/SocialMediaBackend/internal/modules/follow/service"
	"github.com/danevairena/SocialMediaBackend/pkg/response"
	"github.com/danevairena/SocialMediaBackend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	service follow.FollowService
}

func NewFollowHandler(service follow.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	var req followDto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	if err := h.service.Follow(c.Request.Context(), req.FollowerID, req.FollowingID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Followed successfully"})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	var req followDto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), req.FollowerID, req.FollowingID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

func (h *FollowHandler) Status(c *gin.Context) {
	followerID, err := response.ParseID(c.Query("followerId"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	followingID, err := response.ParseID(c.Query("followingId"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	isFollowing, err := h.service.IsFollowing(c.Request.Context(), followerID, followingID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, followDto.FollowStatusResponse{IsFollowing: isFollowing})
}

func (h *FollowHandler) Followers(c *gin.Context) {
	userID, err := response.ParamID(c, "userId")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	users, err := h.service.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *FollowHandler) Following(c *gin.Context) {
	userID, err := response.ParamID(c, "userId")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	users, err := h.service.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// RegisterRoutes mounts the follow endpoints on rg.
func (h *FollowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/follow", h.Follow)
	rg.POST("/unfollow", h.Unfollow)
	rg.GET("/status", h.Status)
	rg.GET("/followers/:userId", h.Followers)
	rg.GET("/following/:userId", h.Following)
}
