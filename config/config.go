package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	BotToken     string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.ClientID != "" &&
		c.ClientSecret != "" &&
		c.RedirectURI != "" &&
		c.BotToken != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL    string
	DatabaseSchema string

	Port                 string // Optional with default "8080"
	CORSAllowedOrigins   string // Optional with default "*"
	Environment          string
	SlackAlertWebhookURL string
	ServerLogsURL        string

	DiscordConfig DiscordConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:          databaseURL,
		DatabaseSchema:       databaseSchema,
		Port:                 getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins:   getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:          getEnvWithDefault("ENVIRONMENT", "dev"),
		SlackAlertWebhookURL: getEnvWithDefault("SLACK_ALERT_WEBHOOK_URL", ""),
		ServerLogsURL:        getEnvWithDefault("SERVER_LOGS_URL", ""),

		DiscordConfig: DiscordConfig{
			ClientID:     os.Getenv("DISCORD_CLIENT_ID"),
			ClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("DISCORD_REDIRECT_URI"),
			BotToken:     os.Getenv("DISCORD_BOT_TOKEN"),
		},
	}

	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord integration configured")
	} else {
		return nil, fmt.Errorf("discord integration is not fully configured")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
