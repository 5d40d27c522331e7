package service

import (
	"context"
	"strings"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	notifDto "github.com/danevairena/SocialMediaBackend/internal/modules/notification/dto"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	notifRepo "github.com/danevairena/SocialMediaBackend/internal/modules/notification/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
)

type NotificationService interface {
	fanout.Sink
	Create(ctx context.Context, req notifDto.CreateNotificationRequest) (*entity.Notification, error)
	ListForUser(ctx context.Context, receiverID uint) ([]notifDto.NotificationResponse, error)
	MarkAsRead(ctx context.Context, receiverID, id uint) error
	MarkAllAsRead(ctx context.Context, receiverID uint) (int64, error)
	UnreadCount(ctx context.Context, receiverID uint) (int64, error)
}

type notificationService struct {
	repo     notifRepo.NotificationRepository
	profiles user.ProfileResolver
}

func NewNotificationService(repo notifRepo.NotificationRepository, profiles user.ProfileResolver) NotificationService {
	return &notificationService{
		repo:     repo,
		profiles: profiles,
	}
}

// Notify persists a fan-out request as an unread notification.
func (s *notificationService) Notify(ctx context.Context, req fanout.Request) error {
	_, err := s.store(ctx, req)
	return err
}

func (s *notificationService) Create(ctx context.Context, req notifDto.CreateNotificationRequest) (*entity.Notification, error) {
	return s.store(ctx, fanout.Request{
		ReceiverID: req.ReceiverID,
		SenderID:   req.SenderID,
		Type:       entity.NotificationType(strings.TrimSpace(req.Type)),
		PostID:     req.PostID,
	})
}

func (s *notificationService) store(ctx context.Context, req fanout.Request) (*entity.Notification, error) {
	if req.ReceiverID == 0 {
		return nil, apperror.InvalidArgument("Missing receiverId")
	}
	if req.Type == "" {
		return nil, apperror.InvalidArgument("Missing type")
	}
	if req.SelfAction() {
		return nil, apperror.InvalidArgument("sender and receiver must differ")
	}

	notification := &entity.Notification{
		ReceiverID: req.ReceiverID,
		SenderID:   req.SenderID,
		Type:       req.Type,
		PostID:     req.PostID,
		IsRead:     false,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, apperror.Storage(err)
	}
	return notification, nil
}

func (s *notificationService) ListForUser(ctx context.Context, receiverID uint) ([]notifDto.NotificationResponse, error) {
	notifications, err := s.repo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	senderIDs := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		if n.SenderID != nil {
			senderIDs = append(senderIDs, *n.SenderID)
		}
	}
	senders, err := s.profiles.ResolveMany(ctx, senderIDs)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	resp := make([]notifDto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := notifDto.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Type.Message(),
			PostID:    n.PostID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.SenderID != nil {
			if sender, ok := senders[*n.SenderID]; ok {
				item.FromUser = &sender
			}
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, receiverID, id uint) error {
	affected, err := s.repo.MarkAsRead(ctx, receiverID, id)
	if err != nil {
		return apperror.Storage(err)
	}
	if affected == 0 {
		return apperror.NotFound("Notification not found")
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, receiverID uint) (int64, error) {
	affected, err := s.repo.MarkAllAsRead(ctx, receiverID)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return affected, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, receiverID uint) (int64, error) {
	count, err := s.repo.CountUnread(ctx, receiverID)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return count, nil
}
