package bootstrap

import (
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService validates marketplace tokens with the shared secret.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Secret == "" {
		return nil, errs.New("JWT_SECRET is required to validate marketplace tokens")
	}
	return jwt.NewService(cfg.JWT.Secret), nil
}
