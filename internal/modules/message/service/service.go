package message

import (
	"context"
	"strings"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	msgDto "github.com/danevairena/SocialMediaBackend/internal/modules/message/dto"
	msgRepo "github.com/danevairena/SocialMediaBackend/internal/modules/message/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/metrics"
)

// MessageService is the direct messaging API. Sending a message never produces a notification.
type MessageService interface {
	Send(ctx context.Context, senderID uint, req msgDto.SendMessageRequest) (*msgDto.MessageResponse, error)
	History(ctx context.Context, viewerID, peerID uint) ([]msgDto.MessageResponse, error)
	MarkSeen(ctx context.Context, viewerID, peerID uint) (int64, error)
	UnreadCount(ctx context.Context, viewerID uint) (int64, error)
	ListConversations(ctx context.Context, viewerID uint) ([]msgDto.ConversationSummary, error)
}

type messageService struct {
	repo     msgRepo.MessageRepository
	profiles user.ProfileResolver
}

func NewMessageService(repo msgRepo.MessageRepository, profiles user.ProfileResolver) MessageService {
	return &messageService{
		repo:     repo,
		profiles: profiles,
	}
}

func (s *messageService) Send(ctx context.Context, senderID uint, req msgDto.SendMessageRequest) (*msgDto.MessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if senderID == 0 || req.ReceiverID == 0 || content == "" {
		return nil, apperror.InvalidArgument("Missing receiverId or content")
	}

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    content,
		Seen:       false,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, apperror.Storage(err)
	}
	metrics.MessagesSent.Inc()

	resp := toResponse(*message)
	return &resp, nil
}

func (s *messageService) History(ctx context.Context, viewerID, peerID uint) ([]msgDto.MessageResponse, error) {
	if viewerID == 0 || peerID == 0 {
		return nil, apperror.InvalidArgument("Invalid user id")
	}

	messages, err := s.repo.History(ctx, viewerID, peerID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	participants, err := s.profiles.ResolveMany(ctx, []uint{viewerID, peerID})
	if err != nil {
		return nil, apperror.Storage(err)
	}

	resp := make([]msgDto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		sender, ok := participants[m.SenderID]
		if !ok {
			sender = s.profiles.Decorate(entity.User{ID: m.SenderID})
		}
		r := toResponse(m)
		r.SenderName = sender.Username
		r.SenderPic = sender.Avatar
		resp = append(resp, r)
	}
	return resp, nil
}

// MarkSeen flips the peer's unseen messages to the viewer. Zero updated rows is not an error.
func (s *messageService) MarkSeen(ctx context.Context, viewerID, peerID uint) (int64, error) {
	if viewerID == 0 || peerID == 0 {
		return 0, apperror.InvalidArgument("Invalid user id")
	}

	updated, err := s.repo.MarkSeen(ctx, viewerID, peerID)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return updated, nil
}

func (s *messageService) UnreadCount(ctx context.Context, viewerID uint) (int64, error) {
	count, err := s.repo.CountUnread(ctx, viewerID)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return count, nil
}

func (s *messageService) ListConversations(ctx context.Context, viewerID uint) ([]msgDto.ConversationSummary, error) {
	messages, err := s.repo.ListInvolving(ctx, viewerID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	conversations := foldConversations(viewerID, messages)

	peerIDs := make([]uint, 0, len(conversations))
	for _, conv := range conversations {
		peerIDs = append(peerIDs, conv.peerID)
	}
	peers, err := s.profiles.ResolveMany(ctx, peerIDs)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	summaries := make([]msgDto.ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		peer, ok := peers[conv.peerID]
		if !ok {
			// the peer account is gone; keep the conversation with a blank profile
			peer = s.profiles.Decorate(entity.User{ID: conv.peerID})
		}
		summaries = append(summaries, msgDto.ConversationSummary{
			UserID:        conv.peerID,
			Username:      peer.Username,
			Avatar:        peer.Avatar,
			LastMessage:   conv.last.Content,
			LastMessageAt: conv.last.CreatedAt,
			UnreadCount:   conv.unread,
		})
	}
	return summaries, nil
}

func toResponse(m entity.Message) msgDto.MessageResponse {
	return msgDto.MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Seen:       m.Seen,
		CreatedAt:  m.CreatedAt,
	}
}
