package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Auth          AuthConfig
	Turso         TursoConfig
	Slack         SlackConfig
	Photos        PhotoConfig
	ProjectID     string
}

type AuthConfig struct {
	Secret       string
	TokenTTLMins int
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type SlackConfig struct {
	Token     string
	ChannelID string
}
type PhotoConfig struct {
	Bucket string
	Region string
}
