// Package hash provides the one-way password hashing capability. The rest
// of the application only sees the Hasher interface; no plaintext password
// crosses the repository boundary.
package hash

import "golang.org/x/crypto/bcrypt"

// Hasher hashes passwords and verifies plaintext candidates against a
// stored hash.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt creates a bcrypt-backed Hasher. A cost of 0 selects the
// library default.
func NewBcrypt(cost int) Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *bcryptHasher) Compare(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
