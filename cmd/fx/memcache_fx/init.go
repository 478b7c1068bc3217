package memcache_fx

import (
	"context"

	"ezyvoyage/internal/config"
	"ezyvoyage/internal/infra"
	mem "ezyvoyage/pkg/memcache"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideTokenStore)

// provideTokenStore uses redis when redis.url is set and process memory
// otherwise.
func provideTokenStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.TokenStore, error) {
	if cfg.Redis.URL == "" {
		log.Info("token store: in-memory")
		return mem.NewMemoryTokens(), nil
	}

	client, err := infra.ConnectRedis(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	log.Info("token store: redis")

	lc.Append(fx.StopHook(func() error {
		return client.Close()
	}))
	return mem.NewRedisTokens(client, cfg.Redis.KeyPrefix), nil
}
