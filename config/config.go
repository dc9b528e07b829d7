package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	DBURL    string
	RedisURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	FingerprintCost    int

	OTPTTLSeconds int

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	EmailFrom string

	AuthRateLimitMax       int
	AuthRateLimitWindowSec int
	APIRateLimitMax        int
	APIRateLimitWindowSec  int
}

func Load() *Config {
	// Best effort; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),
		FingerprintCost:    getEnvAsInt("FINGERPRINT_COST", 10),
		OTPTTLSeconds:      getEnvAsInt("OTP_TTL_SECONDS", 300),
		SMTPHost:           getEnv("EMAIL_HOST", "localhost"),
		SMTPPort:           getEnvAsInt("EMAIL_PORT", 587),
		SMTPUser:           getEnv("EMAIL_USER", ""),
		SMTPPass:           getEnv("EMAIL_PASS", ""),
		EmailFrom:          getEnv("EMAIL_FROM", getEnv("EMAIL_USER", "no-reply@localhost")),

		AuthRateLimitMax:       getEnvAsInt("AUTH_RATE_LIMIT_MAX", 5),
		AuthRateLimitWindowSec: getEnvAsInt("AUTH_RATE_LIMIT_WINDOW", 900),
		APIRateLimitMax:        getEnvAsInt("API_RATE_LIMIT_MAX", 100),
		APIRateLimitWindowSec:  getEnvAsInt("API_RATE_LIMIT_WINDOW", 60),
	}

	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		log.Fatal("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be distinct")
	}

	return cfg
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
