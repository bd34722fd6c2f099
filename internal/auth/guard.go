// Package auth resolves bearer tokens to principals and enforces that a
// principal only ever acts on its own resources.
package auth

import (
	"context"

	"github.com/helix90/list-handler/internal/api/apperrors"
	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/repository"
	"github.com/helix90/list-handler/internal/denylist"
	"github.com/helix90/list-handler/internal/token"
)

// Guard mediates every protected operation: it verifies the token, checks
// revocation, loads the principal and compares it to the path user.
type Guard struct {
	tokens   *token.Service
	userRepo repository.UserRepository
	revoked  denylist.Denylist
}

// NewGuard creates a Guard.
func NewGuard(tokens *token.Service, userRepo repository.UserRepository, revoked denylist.Denylist) *Guard {
	return &Guard{tokens: tokens, userRepo: userRepo, revoked: revoked}
}

// ResolvePrincipal verifies a bearer token and returns the user it names.
// Invalid, expired, malformed and revoked tokens, as well as subjects that
// no longer exist, all collapse into ErrUnauthenticated.
func (g *Guard) ResolvePrincipal(ctx context.Context, bearer string) (*models.User, token.Claims, error) {
	claims, err := g.tokens.Verify(bearer)
	if err != nil {
		return nil, token.Claims{}, apperrors.ErrUnauthenticated
	}

	isRevoked, err := g.revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, token.Claims{}, err
	}
	if isRevoked {
		return nil, token.Claims{}, apperrors.ErrUnauthenticated
	}

	user, err := g.userRepo.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, token.Claims{}, err
	}
	if user == nil {
		return nil, token.Claims{}, apperrors.ErrUnauthenticated
	}
	return user, claims, nil
}

// AuthorizeOwner enforces the path-user check that precedes all data
// access: a token for user A must never act under user B's path. The
// mismatch reports as ErrNotFound, indistinguishable from a missing
// resource, so existence is never leaked across users.
func (g *Guard) AuthorizeOwner(principal *models.User, pathUserID int64) error {
	if principal == nil || principal.ID != pathUserID {
		return apperrors.ErrNotFound
	}
	return nil
}
