package repository

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, postID, userID uint) error
	Delete(ctx context.Context, postID, userID uint) (int64, error)
	ListLikerIDs(ctx context.Context, postID uint) ([]uint, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, postID, userID uint) error {
	return r.db.WithContext(ctx).Create(&entity.LikeEdge{PostID: postID, UserID: userID}).Error
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&entity.LikeEdge{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) ListLikerIDs(ctx context.Context, postID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.LikeEdge{}).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Order("id asc").
		Pluck("user_id", &ids).Error
	return ids, err
}
