package cryptox

import "strings"

// VerifyPassword reports whether plaintext matches the stored hash. bcrypt
// ($2a$, $2b$, $2y$) and PHC argon2id hashes are understood. Anything else,
// including a malformed hash, is a mismatch.
func VerifyPassword(plaintext, storedHash string) bool {
	switch {
	case isBcrypt(storedHash):
		return verifyBcrypt(plaintext, storedHash)
	case strings.HasPrefix(storedHash, "$argon2id$"):
		return verifyArgon2id(plaintext, storedHash) == nil
	default:
		return false
	}
}

func isBcrypt(hash string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}
