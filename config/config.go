package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/portofolyo/auth-service/pkg/constant"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	MigrationsPath     string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	MaxLoginAttempts   int
	LockoutMinutes     int
	BcryptCost         int
	RevocationBackend  string
	RedisAddr          string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "migrations"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", constant.DefaultRefreshExpiryMin),
		MaxLoginAttempts:   getEnvAsInt("MAX_LOGIN_ATTEMPTS", constant.DefaultMaxLoginAttempts),
		LockoutMinutes:     getEnvAsInt("LOCKOUT_MINUTES", constant.DefaultLockoutMinutes),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 0),
		RevocationBackend:  getEnv("REVOCATION_BACKEND", constant.RevocationBackendPostgres),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
