package repository

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]entity.Comment, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Order("id asc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Comment{}, id)
	return res.RowsAffected, res.Error
}
