package user

import (
	"context"
	"errors"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	"github.com/danevairena/SocialMediaBackend/pkg/avatar"
	"github.com/danevairena/SocialMediaBackend/pkg/dto"
	"gorm.io/gorm"
)

// ProfileResolver decorates user ids with display name and avatar URL.
type ProfileResolver interface {
	// Resolve returns found=false when the user does not exist.
	Resolve(ctx context.Context, userID uint) (profile dto.UserSummary, found bool, err error)
	// ResolveMany returns profiles keyed by id. Unknown ids are absent from the map.
	ResolveMany(ctx context.Context, userIDs []uint) (map[uint]dto.UserSummary, error)
	Decorate(u entity.User) dto.UserSummary
}

type profileResolver struct {
	repo    userRepo.UserRepository
	avatars avatar.Decorator
}

func NewProfileResolver(repo userRepo.UserRepository, avatars avatar.Decorator) ProfileResolver {
	return &profileResolver{
		repo:    repo,
		avatars: avatars,
	}
}

func (s *profileResolver) Resolve(ctx context.Context, userID uint) (dto.UserSummary, bool, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserSummary{}, false, nil
	}
	if err != nil {
		return dto.UserSummary{}, false, err
	}
	return s.Decorate(*u), true, nil
}

func (s *profileResolver) ResolveMany(ctx context.Context, userIDs []uint) (map[uint]dto.UserSummary, error) {
	users, err := s.repo.FindByIDs(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}

	profiles := make(map[uint]dto.UserSummary, len(users))
	for _, u := range users {
		profiles[u.ID] = s.Decorate(u)
	}
	return profiles, nil
}

func (s *profileResolver) Decorate(u entity.User) dto.UserSummary {
	return dto.UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   s.avatars.URL(u.ProfilePicture),
	}
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
