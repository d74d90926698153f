package bootstrap

import (
	"time"

	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_REFRESH_TOKEN_DURATION")
	}
	if refresh <= access {
		return nil, errs.Newf("refresh token lifetime %s must exceed access token lifetime %s", refresh, access)
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
