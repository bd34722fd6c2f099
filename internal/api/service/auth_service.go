package service

import (
	"context"
	"fmt"
	"time"

	"github.com/helix90/list-handler/internal/api/apperrors"
	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/repository"
	"github.com/helix90/list-handler/internal/denylist"
	"github.com/helix90/list-handler/internal/hash"
	"github.com/helix90/list-handler/internal/token"
)

// AuthService defines the interface for registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	Logout(ctx context.Context, claims token.Claims) error
}

type authService struct {
	userRepo repository.UserRepository
	hasher   hash.Hasher
	tokens   *token.Service
	revoked  denylist.Denylist
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher hash.Hasher, tokens *token.Service, revoked denylist.Denylist) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		revoked:  revoked,
	}
}

// Register creates a new user account. Username and email must both be
// unused; the password goes through the hasher before it is stored.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateUser
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateUser
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.CreateUser(ctx, req.Username, req.Email, hashed)
}

// Login authenticates the user and returns a signed bearer token. Unknown
// usernames and wrong passwords report identically.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Compare(user.HashedPassword, req.Password) {
		return "", apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", apperrors.ErrInactiveUser
	}

	signed, _, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return signed, nil
}

// Logout revokes the presented token's id until the token would have
// expired on its own.
func (s *authService) Logout(ctx context.Context, claims token.Claims) error {
	return s.revoked.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt))
}
