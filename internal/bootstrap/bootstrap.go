package bootstrap

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"marketflow/internal/application"
	"marketflow/internal/config"
	"marketflow/internal/infrastructure/httpx"
	"marketflow/internal/infrastructure/logx"
	"marketflow/internal/infrastructure/provider"
	"marketflow/internal/infrastructure/snapshot"
)

const snapshotRedisKey = "marketflow:exchanges_snapshot"

// BuildGateway selects the market-data gateway for the configured provider.
// PROVIDER=fake serves canned data for local runs without an API key.
func BuildGateway(cfg config.Config) application.MarketDataGateway {
	if cfg.Provider == "fake" {
		return provider.NewFake(120)
	}
	return &provider.MarketDataAPI{
		BaseURL: cfg.APIBase,
		Client: &httpx.Client{
			HTTP:   &http.Client{Timeout: cfg.RequestTimeout},
			APIKey: cfg.APIKey,
		},
	}
}

// BuildSnapshotStore selects the snapshot backend. The file store is the
// default; STORAGE=redis keeps the snapshot under a single Redis key.
func BuildSnapshotStore(cfg config.Config) (application.SnapshotStore, func()) {
	if cfg.Storage == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return snapshot.NewRedisStore(client, snapshotRedisKey, logx.L()), func() { _ = client.Close() }
	}
	return snapshot.NewFileStore(cfg.SnapshotPath, logx.L()), func() {}
}
