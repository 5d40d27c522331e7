package follow

import (
	"context"

	followRepo "github.com/danevairena/SocialMediaBackend/internal/modules/follow/repository"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	user "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/danevairena/SocialMediaBackend/pkg/database"
	"github.com/danevairena/SocialMediaBackend/pkg/dto"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint) ([]dto.UserSummary, error)
	ListFollowing(ctx context.Context, userID uint) ([]dto.UserSummary, error)
}

type followService struct {
	repo       followRepo.FollowRepository
	profiles   user.ProfileResolver
	dispatcher fanout.Dispatcher
}

func NewFollowService(repo followRepo.FollowRepository, profiles user.ProfileResolver, dispatcher fanout.Dispatcher) FollowService {
	return &followService{
		repo:       repo,
		profiles:   profiles,
		dispatcher: dispatcher,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == 0 || followingID == 0 {
		return apperror.InvalidArgument("Missing followerId or followingId")
	}

	if err := s.repo.Create(ctx, followerID, followingID); err != nil {
		if database.IsDuplicateKey(err) {
			return apperror.Conflict("Already following")
		}
		return apperror.Storage(err)
	}

	// self-follow keeps the edge but never notifies
	if followerID != followingID {
		s.dispatcher.Dispatch(ctx, fanout.Follow(followerID, followingID))
	}
	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followerID == 0 || followingID == 0 {
		return apperror.InvalidArgument("Missing followerId or followingId")
	}

	affected, err := s.repo.Delete(ctx, followerID, followingID)
	if err != nil {
		return apperror.Storage(err)
	}
	if affected == 0 {
		return apperror.NotFound("Not following")
	}
	return nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	if followerID == 0 || followingID == 0 {
		return false, apperror.InvalidArgument("Invalid followerId or followingId")
	}

	exists, err := s.repo.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, apperror.Storage(err)
	}
	return exists, nil
}

func (s *followService) ListFollowers(ctx context.Context, userID uint) ([]dto.UserSummary, error) {
	ids, err := s.repo.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return s.decorate(ctx, ids)
}

func (s *followService) ListFollowing(ctx context.Context, userID uint) ([]dto.UserSummary, error) {
	ids, err := s.repo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return s.decorate(ctx, ids)
}

// decorate keeps the order of ids and drops users that no longer resolve.
func (s *followService) decorate(ctx context.Context, ids []uint) ([]dto.UserSummary, error) {
	profiles, err := s.profiles.ResolveMany(ctx, ids)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	out := make([]dto.UserSummary, 0, len(ids))
	for _, id := range ids {
		if p, ok := profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
