// Package token issues and verifies the signed bearer tokens that carry a
// session. Tokens are stateless: nothing is persisted, expiry is the only
// bound on their lifetime (revocation lives in the denylist package).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken means the signature did not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrMalformedToken means a required claim is absent or the token
	// could not be parsed at all.
	ErrMalformedToken = errors.New("malformed token")
)

// Claims is the verified claim set of a bearer token.
type Claims struct {
	Subject   string
	TokenID   string
	ExpiresAt time.Time
}

// Service signs and verifies HS256 tokens with a fixed TTL. The secret and
// TTL are injected at construction; there is no ambient configuration.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given subject with a fresh token
// id and an absolute expiry of now+TTL.
func (s *Service) Issue(subject string) (string, Claims, error) {
	now := time.Now()
	claims := Claims{
		Subject:   subject,
		TokenID:   uuid.New().String(),
		ExpiresAt: now.Add(s.ttl),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": claims.Subject,
		"jti": claims.TokenID,
		"iat": now.Unix(),
		"exp": claims.ExpiresAt.Unix(),
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, claims, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
func (s *Service) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Claims{}, ErrMalformedToken
	default:
		return Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMalformedToken
	}

	sub, _ := mc["sub"].(string)
	jti, _ := mc["jti"].(string)
	if sub == "" || jti == "" {
		return Claims{}, ErrMalformedToken
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrMalformedToken
	}

	return Claims{Subject: sub, TokenID: jti, ExpiresAt: exp.Time}, nil
}
