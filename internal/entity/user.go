package entity

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	FirstName      string    `gorm:"size:100" json:"first_name"`
	LastName       string    `gorm:"size:100" json:"last_name"`
	Bio            *string   `gorm:"type:text" json:"bio,omitempty"`
	ProfilePicture *string   `gorm:"size:255" json:"profile_picture,omitempty"` // filename only, see avatar.Decorator
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Post is owned by the post collaborator; only ownership is read here.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURL  *string   `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
