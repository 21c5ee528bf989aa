package services

import (
	"context"

	"deltaboard/models"
)

// AuthService defines the interface for the Discord OAuth code exchange
type AuthService interface {
	AuthenticateWithCode(ctx context.Context, code string) (*models.AuthSession, error)
}

// GuildsService defines the interface for guild resolution operations
type GuildsService interface {
	ListManagedGuilds(ctx context.Context, userToken string) ([]*models.Guild, error)
	GetGuildInfo(ctx context.Context, guildID string) (*models.Guild, error)
	IsGuildAdmin(ctx context.Context, userToken, guildID string) (bool, error)
}

// EconomySettingsService defines the interface for per-guild economy settings
type EconomySettingsService interface {
	GetEconomySettings(ctx context.Context, guildID string) (*models.EconomySettings, error)
	UpdateEconomySettings(ctx context.Context, guildID string, cooldown, minAmount, maxAmount int) (*models.EconomySettings, error)
}
