package dto

// UserSummary is the public profile shape attached to follower, liker, comment and
// notification listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
