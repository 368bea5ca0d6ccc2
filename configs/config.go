package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins     []string
	RateLimitMax    int
	RateLimitWindow time.Duration

	// The reserved main account. Cannot be registered, promoted, demoted
	// or deleted through the normal endpoints.
	SuperadminEmail    string
	SuperadminPassword string
	SuperadminName     string
	SuperadminPhone    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "superapp.db"),
		Port:      getEnv("PORT", "4000"),
		JWTSecret: getEnv("JWT_SECRET", "change_this_secret_in_production"),
		JWTTTL:    getDuration("JWT_TTL", 7*24*time.Hour),

		CORSOrigins:     strings.Split(getEnv("CORS_ORIGIN", "*"), ","),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 150),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),

		SuperadminEmail:    getEnv("SUPERADMIN_EMAIL", "admin@superapp.com"),
		SuperadminPassword: os.Getenv("SUPERADMIN_PASSWORD"),
		SuperadminName:     getEnv("SUPERADMIN_NAME", "Super Admin"),
		SuperadminPhone:    getEnv("SUPERADMIN_PHONE", "0000000000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
	}
	return fallback
}
