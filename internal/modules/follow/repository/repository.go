package repository

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID uint) error
	Delete(ctx context.Context, followerID, followingID uint) (int64, error)
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowerIDs(ctx context.Context, userID uint) ([]uint, error)
	ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create relies on the unique pair index; a duplicate surfaces as the store's constraint error.
func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) error {
	edge := &entity.FollowEdge{FollowerID: followerID, FollowingID: followingID}
	return r.db.WithContext(ctx).Create(edge).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entity.FollowEdge{})
	return res.RowsAffected, res.Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&entity.FollowEdge{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ListFollowerIDs is ordered by when each edge was created.
func (r *followRepository) ListFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.FollowEdge{}).
		Where("following_id = ?", userID).
		Order("created_at asc").
		Order("id asc").
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.FollowEdge{}).
		Where("follower_id = ?", userID).
		Order("created_at asc").
		Order("id asc").
		Pluck("following_id", &ids).Error
	return ids, err
}
