package app

import (
	"fmt"
	"log/slog"

	"github.com/kidventure/partnerhub/pkg/jwtx"
)

// InitKeys generates the signing keys of this process. Keys live only in
// memory: after a restart access tokens stop verifying and the dashboard
// signs back in through its refresh token.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		NumKeys:  cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing keys: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"num_keys", km.NumSigners(),
		"issuer", cfg.Issuer,
	)
	return km, nil
}
