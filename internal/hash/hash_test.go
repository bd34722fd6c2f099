package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hashed, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hashed == "pw123456" {
		t.Fatal("Hash() returned the plaintext")
	}

	if !h.Compare(hashed, "pw123456") {
		t.Error("Compare() rejected the correct password")
	}
	if h.Compare(hashed, "wrong-password") {
		t.Error("Compare() accepted a wrong password")
	}
}
