package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	// Optional env vars fall back to a default instead of failing.
	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	tokenTTL, err := strconv.Atoi(getEnvDefault("AUTH_TOKEN_TTL_MINUTES", "1440"))
	if err != nil {
		log.Fatalf("Error: AUTH_TOKEN_TTL_MINUTES must be an integer: %s", err)
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		Auth: AuthConfig{
			Secret:       getEnv("AUTH_SECRET"),
			TokenTTLMins: tokenTTL,
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Photos: PhotoConfig{
			Bucket: getEnv("PHOTO_BUCKET"),
			Region: getEnvDefault("AWS_REGION", "eu-north-1"),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
