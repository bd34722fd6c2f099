package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-tokens"

func TestIssueAndVerify(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	signed, claims, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("issued subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.TokenID == "" {
		t.Error("issued token id is empty")
	}

	got, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.Subject != "alice" {
		t.Errorf("verified subject = %q, want %q", got.Subject, "alice")
	}
	if got.TokenID != claims.TokenID {
		t.Errorf("verified token id = %q, want %q", got.TokenID, claims.TokenID)
	}
	if got.ExpiresAt.Before(time.Now()) {
		t.Error("verified expiry is already in the past")
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService(testSecret, -time.Minute)

	signed, _, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = svc.Verify(signed)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, _, err := NewService("another-secret-entirely-here", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = NewService(testSecret, time.Hour).Verify(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	// A validly-signed token missing the required claims.
	missingClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := missingClaims.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "garbage", token: "not-a-token", want: ErrMalformedToken},
		{name: "empty", token: "", want: ErrMalformedToken},
		{name: "missing claims", token: signed, want: ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); !errors.Is(err, tt.want) {
				t.Errorf("Verify() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"jti": "some-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := NewService(testSecret, time.Hour).Verify(signed); err == nil {
		t.Error("Verify() accepted an unsigned token")
	}
}
