package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the work factor used when hashing passwords at
// registration. Kept configurable so tests can use a cheaper cost.
const DefaultBcryptCost = 12

// HashPassword returns a bcrypt hash of plain using the given cost. The salt
// is generated per call and embedded in the digest.
func HashPassword(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash against a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
