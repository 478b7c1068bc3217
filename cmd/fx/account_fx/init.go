package account_fx

import (
	"ezyvoyage/internal/config"
	"ezyvoyage/internal/repositories"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	provideTokenManager,
	services.NewAccountService,
	services.NewProfileService,
	services.NewOAuthService,
)

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
