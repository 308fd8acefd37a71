package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment with
// sensible defaults for local development.
type Config struct {
	HTTPAddr          string
	DatabaseURL       string
	RedisAddr         string
	JWTSecret         string
	LowStockThreshold int
	ReportCacheTTL    time.Duration
}

// Load reads configuration via viper. Every key can be overridden with an
// environment variable of the same name.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "super-secret-key")
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("REPORT_CACHE_TTL", "5m")
	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("REPORT_CACHE_TTL"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
		ReportCacheTTL:    ttl,
	}, nil
}
