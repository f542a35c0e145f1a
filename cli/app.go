package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripplanner/config"
	"tripplanner/database"
	"tripplanner/logger"
	"tripplanner/services"
)

// app bundles everything a command needs, built once from config.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	planner *services.Planner
	store   database.Store
	redis   *redis.Client
}

func newApp(cfg *config.Config, seed uint64) (*app, error) {
	log, err := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	var resolver services.Resolver = services.NewNominatimClient(
		cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout, log)

	a.store = database.NewMemoryStore(cfg.Redis.SessionTTL)
	if cfg.Redis.Enabled {
		if client := a.connectRedis(); client != nil {
			a.redis = client
			resolver = services.NewCachedResolver(resolver, client, cfg.Redis.GeocodeTTL, log)
			a.store = database.NewRedisStore(client, cfg.Redis.SessionTTL)
		}
	}

	a.planner = services.NewPlanner(resolver, services.NewOffsetSampler(), services.NewCatalog(),
		services.NewRandom(seed), log)
	return a, nil
}

// connectRedis returns nil when Redis is unreachable; the app then keeps
// sessions in memory and geocodes without a cache.
func (a *app) connectRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Address,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.log.Warn("redis unavailable, using in-memory sessions", map[string]interface{}{
			"address": a.cfg.Redis.Address,
			"error":   err.Error(),
		})
		_ = client.Close()
		return nil
	}

	a.log.Info("redis connected", map[string]interface{}{"address": a.cfg.Redis.Address})
	return client
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
