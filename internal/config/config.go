package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	Port            string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CORSOrigins     []string
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local runs behave like deployed ones.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:     GetEnvAsString("DATABASE_URL", ""),
		Port:            GetEnvAsString("PORT", "8080"),
		JWTSecret:       GetEnvAsString("JWT_SECRET", ""),
		AccessTokenTTL:  GetEnvAsDuration("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: GetEnvAsDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		CORSOrigins:     splitOrigins(GetEnvAsString("CORS_ORIGINS", "http://localhost:3000,http://localhost:8000")),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
