package token

import (
	"golang.org/x/crypto/bcrypt"
)

var hashCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash. The salt lives inside the hash.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches hash. A malformed hash is a
// mismatch, not an error.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
