package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI                 string
	MongoDB                  string
	JWTSecret                string
	AccessTokenExpireMinutes int
	GinMode                  string
	ServerPort               string
}

func Load() *Config {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		MongoURI:                 getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:                  getEnv("MONGO_DB", "assignment_portal"),
		JWTSecret:                getEnv("JWT_SECRET", "default-secret-key-change-me"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		GinMode:                  getEnv("GIN_MODE", "debug"),
		ServerPort:               getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
