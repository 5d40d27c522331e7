package like

import (
	"context"

	likeRepo "github.com/danevairena/SocialMediaBackend/internal/modules/like/repository"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	postRepo "github.com/danevairena/SocialMediaBackend/internal/modules/post/repository"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/database"
	"github.com/danevairena/SocialMediaBackend/pkg/dto"
	"go.uber.org/zap"
)

type LikeService interface {
	Like(ctx context.Context, postID, userID uint) error
	Unlike(ctx context.Context, postID, userID uint) error
	ListLikers(ctx context.Context, postID uint) ([]dto.UserSummary, error)
}

type likeService struct {
	repo       likeRepo.LikeRepository
	postRepo   postRepo.PostRepository
	profiles   user.ProfileResolver
	dispatcher fanout.Dispatcher
	log        *zap.Logger
}

func NewLikeService(repo likeRepo.LikeRepository, postRepo postRepo.PostRepository, profiles user.ProfileResolver, dispatcher fanout.Dispatcher, log *zap.Logger) LikeService {
	return &likeService{
		repo:       repo,
		postRepo:   postRepo,
		profiles:   profiles,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (s *likeService) Like(ctx context.Context, postID, userID uint) error {
	if postID == 0 || userID == 0 {
		return apperror.InvalidArgument("Missing postId or userId")
	}

	if err := s.repo.Create(ctx, postID, userID); err != nil {
		if database.IsDuplicateKey(err) {
			return apperror.Conflict("Already liked")
		}
		return apperror.Storage(err)
	}

	ownerID, found, err := s.postRepo.FindOwner(ctx, postID)
	if err != nil {
		s.log.Warn("post owner lookup failed, skipping like notification",
			zap.Uint("post_id", postID),
			zap.Error(err),
		)
		return nil
	}
	if !found || ownerID == userID {
		return nil
	}

	s.dispatcher.Dispatch(ctx, fanout.Like(ownerID, userID, postID))
	return nil
}

func (s *likeService) Unlike(ctx context.Context, postID, userID uint) error {
	if postID == 0 || userID == 0 {
		return apperror.InvalidArgument("Missing postId or userId")
	}

	affected, err := s.repo.Delete(ctx, postID, userID)
	if err != nil {
		return apperror.Storage(err)
	}
	if affected == 0 {
		return apperror.NotFound("Like not found")
	}
	return nil
}

func (s *likeService) ListLikers(ctx context.Context, postID uint) ([]dto.UserSummary, error) {
	ids, err := s.repo.ListLikerIDs(ctx, postID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	profiles, err := s.profiles.ResolveMany(ctx, ids)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	likers := make([]dto.UserSummary, 0, len(ids))
	for _, id := range ids {
		if p, ok := profiles[id]; ok {
			likers = append(likers, p)
		}
	}
	return likers, nil
}
