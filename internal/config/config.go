package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Facade
	Port string
	// Market-data API
	Provider       string
	APIBase        string
	APIKey         string
	PageSize       int
	CoinLimit      int
	RequestTimeout time.Duration
	// Snapshot store
	Storage      string
	SnapshotPath string
	// Redis (snapshot backend)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Image cache
	ImageCacheBytes int64
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "8080"),
		Provider:        getEnv("PROVIDER", "cmc"),
		APIBase:         getEnv("MARKET_API_BASE", "https://pro-api.coinmarketcap.com"),
		APIKey:          getEnv("MARKET_API_KEY", ""),
		PageSize:        atoiDef(getEnv("PAGE_SIZE", "50"), 50),
		CoinLimit:       atoiDef(getEnv("COIN_LIMIT", "20"), 20),
		RequestTimeout:  time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", "5000"), 5000)) * time.Millisecond,
		Storage:         getEnv("STORAGE", "file"),
		SnapshotPath:    getEnv("SNAPSHOT_PATH", "data/exchanges_cache.json"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         atoiDef(getEnv("REDIS_DB", "0"), 0),
		ImageCacheBytes: int64(atoiDef(getEnv("IMAGE_CACHE_BYTES", "52428800"), 52428800)),
	}
}
