package dto

type LikeRequest struct {
	PostID uint `json:"postId" binding:"required"`
	UserID uint `json:"userId" binding:"required"`
}
