package repository

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	History(ctx context.Context, viewerID, peerID uint) ([]entity.Message, error)
	ListInvolving(ctx context.Context, userID uint) ([]entity.Message, error)
	MarkSeen(ctx context.Context, viewerID, peerID uint) (int64, error)
	CountUnread(ctx context.Context, viewerID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) History(ctx context.Context, viewerID, peerID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", viewerID, peerID, peerID, viewerID).
		Order("created_at asc").
		Order("id asc").
		Find(&messages).Error
	return messages, err
}

// ListInvolving returns every message the user sent or received, unordered.
func (r *messageRepository) ListInvolving(ctx context.Context, userID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkSeen(ctx context.Context, viewerID, peerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND seen = ?", viewerID, peerID, false).
		Update("seen", true)
	return res.RowsAffected, res.Error
}

func (r *messageRepository) CountUnread(ctx context.Context, viewerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("receiver_id = ? AND seen = ?", viewerID, false).
		Count(&count).Error
	return count, err
}
