package pagecache

import (
	"context"

	"github.com/acmelabs/facture/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the page cache, Redis-backed when REDIS_ADDR is set.
var Module = fx.Module("pagecache",
	fx.Provide(New),
)

func New(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) Cache {
	if cfg.RedisAddr == "" {
		log.Info("page cache using in-memory store")
		return NewMemoryCache(cfg.PageCacheTTL)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			log.Info("page cache using redis", zap.String("addr", cfg.RedisAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = ctx
			return client.Close()
		},
	})

	return NewRedisCache(client, cfg.PageCacheTTL, log.Named("pagecache"))
}
