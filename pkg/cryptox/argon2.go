package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

var errArgon2Mismatch = errors.New("cryptox: password does not match")

// HashPasswordArgon2id generates a PHC-format Argon2id hash string including
// salt and parameters.
func HashPasswordArgon2id(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: argon2id salt: %w", err)
	}
	hash := argon2.IDKey([]byte(plaintext), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// verifyArgon2id checks plaintext against $argon2id$v=19$m=X,t=Y,p=Z$salt$hash.
func verifyArgon2id(plaintext, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return errors.New("cryptox: invalid argon2id hash format")
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return errors.New("cryptox: unsupported argon2 version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("cryptox: argon2id parameters: %w", err)
	}
	if mem == 0 || iters == 0 || par == 0 {
		return errors.New("cryptox: argon2id parameters out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("cryptox: argon2id salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return errors.New("cryptox: argon2id digest")
	}

	computed := argon2.IDKey(
		[]byte(plaintext),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - digest length comes from our own encoder
	)
	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return errArgon2Mismatch
	}
	return nil
}
