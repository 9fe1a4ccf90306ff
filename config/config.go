package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	DBName    string
	JWTSecret string
	TokenTTL  time.Duration
	Port      string
}

// Load reads .env (if present) and the environment. MONGODB_URI and
// JWT_SECRET have no usable defaults and are fatal when missing.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}

	cfg := Config{
		MongoURI:  os.Getenv("MONGODB_URI"),
		DBName:    getEnvOrDefault("DB_NAME", "alumninet"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getHoursEnv("TOKEN_TTL_HOURS", 24),
		Port:      getEnvOrDefault("PORT", "7000"),
	}

	if cfg.MongoURI == "" || cfg.JWTSecret == "" {
		log.Fatal("MONGODB_URI and JWT_SECRET must be set")
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getHoursEnv(key string, defaultValue int) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Hour
		}
	}
	return time.Duration(defaultValue) * time.Hour
}
