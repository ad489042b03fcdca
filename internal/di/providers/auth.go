package providers

import (
	"github.com/samber/do/v2"

	"github.com/shelflogapp/shelflog-server/internal/auth"
	"github.com/shelflogapp/shelflog-server/internal/config"
	"github.com/shelflogapp/shelflog-server/internal/logger"
)

// AuthKey is the PASETO symmetric key for session tokens.
type AuthKey []byte

// ProvideAuthKey loads or generates the session signing key.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Data.BasePath)
	if err != nil {
		return nil, err
	}

	log.Info("Session key ready")
	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	key := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(key, cfg.Auth.SessionDuration)
}
