package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"github.com/danevairena/SocialMediaBackend/internal/modules/user/dto"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	IssueToken(user *entity.User) (*dto.AuthResponse, error)
}

type authService struct {
	repo     userRepo.UserRepository
	profiles ProfileResolver
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo userRepo.UserRepository, profiles ProfileResolver, secret string, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}

	return &authService{
		repo:     repo,
		profiles: profiles,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, apperror.Storage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	return s.IssueToken(user)
}

func (s *authService) IssueToken(user *entity.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        s.profiles.Decorate(*user),
	}, nil
}

func (s *authService) generateToken(user *entity.User) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}
