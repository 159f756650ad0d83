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
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	AllowedOrigins []string

	// requests per minute, 0 disables
	AnonThrottleRPM int
	UserThrottleRPM int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "littlelemon.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		AdminUsername:   getEnv("ADMIN_USERNAME", ""),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AnonThrottleRPM: getEnvInt("ANON_THROTTLE_RPM", 0),
		UserThrottleRPM: getEnvInt("USER_THROTTLE_RPM", 0),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return n
}
