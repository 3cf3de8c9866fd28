package cryptox

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost of the seeded account hashes.
const DefaultBcryptCost = 10

// dummyHash is compared against when no stored hash exists so that the
// caller spends the same time as for a real account.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), DefaultBcryptCost)
	if err != nil {
		panic(fmt.Sprintf("cryptox: dummy bcrypt hash: %v", err))
	}
	return hash
})

// HashPassword returns a bcrypt hash at the given cost. A cost outside
// bcrypt's range falls back to DefaultBcryptCost.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// BurnPasswordCheck performs a bcrypt comparison whose result is thrown
// away. Call it when the account is unknown.
func BurnPasswordCheck(plaintext string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plaintext))
}

func verifyBcrypt(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
