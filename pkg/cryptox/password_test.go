package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("marco123", bcrypt.MinCost)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$04$"), "unexpected hash %q", hash)

	require.True(t, VerifyPassword("marco123", hash))
	require.False(t, VerifyPassword("marco124", hash))
	require.False(t, VerifyPassword("", hash))
}

func TestHashPasswordBcryptCostFallback(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, DefaultBcryptCost, cost)
}

func TestVerifyPasswordBcryptVariants(t *testing.T) {
	hash, err := HashPassword("santiago456", bcrypt.MinCost)
	require.NoError(t, err)

	// $2b$ and $2y$ share the $2a$ digest format
	for _, prefix := range []string{"$2b$", "$2y$"} {
		variant := prefix + strings.TrimPrefix(hash, "$2a$")
		require.True(t, strings.HasPrefix(variant, prefix))
		require.True(t, isBcrypt(variant))
		require.True(t, VerifyPassword("santiago456", variant), "prefix %s", prefix)
	}
}

func TestHashPasswordArgon2id(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPasswordArgon2id(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=19456,t=2,p=1", parts[3])

			require.True(t, VerifyPassword(tt.password, hash))
			require.False(t, VerifyPassword(tt.password+"x", hash))
		})
	}
}

func TestHashPasswordArgon2idSalted(t *testing.T) {
	h1, err := HashPasswordArgon2id("same")
	require.NoError(t, err)
	h2, err := HashPasswordArgon2id("same")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "salt should make hashes differ")
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext stored", "marco123"},
		{"unknown scheme", "$1$abc$def"},
		{"truncated bcrypt", "$2a$10$short"},
		{"argon2i not id", "$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"argon2id wrong version", "$argon2id$v=16$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"argon2id bad params", "$argon2id$v=19$m=x,t=2,p=1$c2FsdA$aGFzaA"},
		{"argon2id zero params", "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA"},
		{"argon2id bad salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"argon2id missing digest", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$"},
		{"argon2id too few parts", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, VerifyPassword("marco123", tt.hash))
		})
	}
}

func TestBurnPasswordCheck(t *testing.T) {
	require.NotPanics(t, func() {
		BurnPasswordCheck("whatever")
	})
}
