package config_fx

import (
	"ezyvoyage/internal/config"
	"ezyvoyage/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(config.Load, provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format).
		With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Environment))
	zap.ReplaceGlobals(log)

	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log
}
