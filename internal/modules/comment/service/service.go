package comment

import (
	"context"
	"strings"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	commentDto "github.com/danevairena/SocialMediaBackend/internal/modules/comment/dto"
	commentRepo "github.com/danevairena/SocialMediaBackend/internal/modules/comment/repository"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	postRepo "github.com/danevairena/SocialMediaBackend/internal/modules/post/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/dto"
	"go.uber.org/zap"
)

type CommentService interface {
	Create(ctx context.Context, req commentDto.CreateCommentRequest) (*commentDto.CommentResponse, error)
	ListForPost(ctx context.Context, postID uint) ([]commentDto.CommentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type commentService struct {
	repo       commentRepo.CommentRepository
	postRepo   postRepo.PostRepository
	profiles   user.ProfileResolver
	dispatcher fanout.Dispatcher
	log        *zap.Logger
}

func NewCommentService(repo commentRepo.CommentRepository, postRepo postRepo.PostRepository, profiles user.ProfileResolver, dispatcher fanout.Dispatcher, log *zap.Logger) CommentService {
	return &commentService{
		repo:       repo,
		postRepo:   postRepo,
		profiles:   profiles,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (s *commentService) Create(ctx context.Context, req commentDto.CreateCommentRequest) (*commentDto.CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if req.PostID == 0 || req.UserID == 0 || text == "" {
		return nil, apperror.InvalidArgument("Missing postId, userId or text")
	}

	author, found, err := s.profiles.Resolve(ctx, req.UserID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if !found {
		return nil, apperror.NotFound("User not found")
	}

	comment := &entity.Comment{
		PostID: req.PostID,
		UserID: req.UserID,
		Text:   text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, apperror.Storage(err)
	}

	s.notifyOwner(ctx, comment)

	resp := toResponse(*comment, author)
	return &resp, nil
}

func (s *commentService) notifyOwner(ctx context.Context, comment *entity.Comment) {
	ownerID, found, err := s.postRepo.FindOwner(ctx, comment.PostID)
	if err != nil {
		s.log.Warn("post owner lookup failed, skipping comment notification",
			zap.Uint("post_id", comment.PostID),
			zap.Error(err),
		)
		return
	}
	if !found || ownerID == comment.UserID {
		return
	}
	s.dispatcher.Dispatch(ctx, fanout.Comment(ownerID, comment.UserID, comment.PostID))
}

func (s *commentService) ListForPost(ctx context.Context, postID uint) ([]commentDto.CommentResponse, error) {
	if postID == 0 {
		return nil, apperror.InvalidArgument("Missing postId")
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.UserID)
	}
	authors, err := s.profiles.ResolveMany(ctx, authorIDs)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	resp := make([]commentDto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		author, ok := authors[c.UserID]
		if !ok {
			continue
		}
		resp = append(resp, toResponse(c, author))
	}
	return resp, nil
}

// Delete removes the comment only; notifications it produced are kept.
func (s *commentService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return apperror.InvalidArgument("Missing comment id")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Storage(err)
	}
	if affected == 0 {
		return apperror.NotFound("Comment not found")
	}
	return nil
}

func toResponse(c entity.Comment, author dto.UserSummary) commentDto.CommentResponse {
	return commentDto.CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Username:  author.Username,
		Avatar:    author.Avatar,
	}
}
