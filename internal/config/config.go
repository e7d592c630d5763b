package config

import (
	"os"
	"strconv"
)

// Config holds the collections API configuration, read from the environment.
type Config struct {
	HTTP struct {
		Addr string
	}
	Database struct {
		URL          string
		MaxConns     int
		MaxIdleConns int
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// DATABASE_URL has no sane default; main fails fast when it is empty.
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdleConns = parseInt(getEnv("DB_MAX_IDLE_CONNS", "5"), 5)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
