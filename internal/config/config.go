package config

import (
	"os"
	"strconv"
	"time"

	"github.com/labstack/gommon/random"
)

// Settings holds the process-wide configuration, read once at startup and
// passed explicitly into the components that need it.
type Settings struct {
	AppName                  string
	Env                      string
	Port                     string
	SecretKey                string
	AccessTokenExpireMinutes int
	DatabaseURL              string
	LogLevel                 string
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *Settings) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}

// Load reads settings from the environment. SECRET_KEY falls back to a
// generated value so development setups work out of the box; production
// deployments must set it explicitly or issued tokens die with the process.
func Load() *Settings {
	settings := &Settings{
		AppName:                  "AdamDesk",
		Env:                      getEnv("ENV", "development"),
		Port:                     getEnv("PORT", "8080"),
		SecretKey:                os.Getenv("SECRET_KEY"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
	}

	if settings.SecretKey == "" {
		settings.SecretKey = random.String(32)
	}

	return settings
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
