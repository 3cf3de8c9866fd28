package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/movies/pkg/cryptox"
	"github.com/aussiebroadwan/movies/pkg/jwtx"
)

// InitTokenCodec builds the HS256 codec from cfg.SecretKey.
//
// Without a configured secret a random one is generated, so tokens stop
// verifying whenever the process restarts.
func InitTokenCodec(cfg Config, logger *slog.Logger, now func() time.Time) (*jwtx.Codec, error) {
	secret := []byte(cfg.SecretKey)

	if len(secret) == 0 {
		generated, err := cryptox.GenerateSecret(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing secret: %w", err)
		}
		secret = generated

		logger.Warn("MOVIES_SECRET_KEY not set, using an ephemeral signing secret")
	}

	codec, err := jwtx.New(jwtx.Config{Secret: secret, Now: now})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}

	logger.Info("token codec ready", "algorithm", codec.Alg(), "token_ttl", cfg.TokenTTL)
	return codec, nil
}
