package dto

import "time"

type CreateCommentRequest struct {
	PostID uint   `json:"postId" binding:"required"`
	UserID uint   `json:"userId" binding:"required"`
	Text   string `json:"text" binding:"required,max=2000"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
}
