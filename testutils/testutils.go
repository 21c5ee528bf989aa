package testutils

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"deltaboard/appctx"
	"deltaboard/config"
	"deltaboard/models"
)

// LoadTestConfig loads configuration for tests from environment variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From package directories
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// NewTestGuildID generates a unique guild ID to avoid collisions between tests
func NewTestGuildID() string {
	return "test-guild-" + uuid.New().String()
}

// CreateTestContext creates a context carrying an authenticated user and
// their bearer token, as the identity gate would
func CreateTestContext(user *models.DiscordUser, accessToken string) context.Context {
	ctx := appctx.SetUser(context.Background(), user)
	return appctx.SetAccessToken(ctx, accessToken)
}
