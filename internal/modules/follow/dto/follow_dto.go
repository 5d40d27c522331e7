package dto

type FollowRequest struct {
	FollowerID  uint `json:"followerId" binding:"required"`
	FollowingID uint `json:"followingId" binding:"required"`
}

type FollowStatusResponse struct {
	IsFollowing bool `json:"isFollowing"`
}
