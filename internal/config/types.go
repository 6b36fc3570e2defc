package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Slack     SlackConfig
	Turso     TursoConfig
	ProjectID string
	LogLevel  string
	// DisplayOffset shifts stored UTC timestamps for display. Defaults to KST.
	DisplayOffset time.Duration
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// Enabled reports whether a Slack bot token is configured.
func (s SlackConfig) Enabled() bool {
	return s.Token != ""
}
