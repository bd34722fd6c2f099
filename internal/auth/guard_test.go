package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix90/list-handler/internal/api/apperrors"
	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/denylist"
	"github.com/helix90/list-handler/internal/token"
)

type staticUserRepo struct {
	users map[string]*models.User
}

func (r *staticUserRepo) CreateUser(ctx context.Context, username, email, hashedPassword string) (*models.User, error) {
	return nil, nil
}

func (r *staticUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.users[username], nil
}

func (r *staticUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func newTestGuard(ttl time.Duration) (*Guard, *token.Service, denylist.Denylist) {
	tokens := token.NewService("guard-test-secret-key", ttl)
	revoked := denylist.NewMemory()
	repo := &staticUserRepo{users: map[string]*models.User{
		"alice": {ID: 1, Username: "alice", IsActive: true},
	}}
	return NewGuard(tokens, repo, revoked), tokens, revoked
}

func TestResolvePrincipal(t *testing.T) {
	guard, tokens, _ := newTestGuard(time.Hour)
	ctx := context.Background()

	signed, issued, err := tokens.Issue("alice")
	require.NoError(t, err)

	principal, claims, err := guard.ResolvePrincipal(ctx, signed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, principal.ID)
	assert.Equal(t, issued.TokenID, claims.TokenID)
}

func TestResolvePrincipalExpired(t *testing.T) {
	guard, tokens, _ := newTestGuard(-time.Minute)

	signed, _, err := tokens.Issue("alice")
	require.NoError(t, err)

	_, _, err = guard.ResolvePrincipal(context.Background(), signed)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated, "expired tokens must never be treated as valid")
}

func TestResolvePrincipalRevoked(t *testing.T) {
	guard, tokens, revoked := newTestGuard(time.Hour)
	ctx := context.Background()

	signed, claims, err := tokens.Issue("alice")
	require.NoError(t, err)
	require.NoError(t, revoked.Revoke(ctx, claims.TokenID, time.Hour))

	_, _, err = guard.ResolvePrincipal(ctx, signed)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestResolvePrincipalUnknownSubject(t *testing.T) {
	guard, tokens, _ := newTestGuard(time.Hour)

	signed, _, err := tokens.Issue("ghost")
	require.NoError(t, err)

	_, _, err = guard.ResolvePrincipal(context.Background(), signed)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestResolvePrincipalGarbage(t *testing.T) {
	guard, _, _ := newTestGuard(time.Hour)

	_, _, err := guard.ResolvePrincipal(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthorizeOwner(t *testing.T) {
	guard, _, _ := newTestGuard(time.Hour)
	alice := &models.User{ID: 1, Username: "alice"}

	assert.NoError(t, guard.AuthorizeOwner(alice, 1))

	// The mismatch reads exactly like a missing resource.
	assert.ErrorIs(t, guard.AuthorizeOwner(alice, 2), apperrors.ErrNotFound)
	assert.ErrorIs(t, guard.AuthorizeOwner(nil, 1), apperrors.ErrNotFound)
}
