package repository

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"gorm.io/gorm"
)

// PostRepository is the narrow view of the posts collaborator needed for fan-out.
type PostRepository interface {
	// FindOwner returns the author of postID; found is false when the post does not exist.
	FindOwner(ctx context.Context, postID uint) (ownerID uint, found bool, err error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) FindOwner(ctx context.Context, postID uint) (uint, bool, error) {
	// Find with a slice avoids gorm's "record not found" log noise from First()
	var posts []entity.Post
	err := r.db.WithContext(ctx).
		Select("id", "user_id").
		Where("id = ?", postID).
		Limit(1).
		Find(&posts).Error
	if err != nil {
		return 0, false, err
	}
	if len(posts) == 0 {
		return 0, false, nil
	}
	return posts[0].UserID, true, nil
}
