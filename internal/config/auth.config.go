package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr  string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("AUTH: No .env file found, relying on system env vars")
	}

	return Config{
		HTTPAddr:  ":" + getEnv("PORT", "3000"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:   getEnv("MONGO_DB", "test"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "user-auth-service"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
