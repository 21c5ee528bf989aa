package economy

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"deltaboard/models"
)

// EconomySettingsRepository defines the interface for economy settings persistence
type EconomySettingsRepository interface {
	GetSettingsByGuildID(ctx context.Context, guildID string) (mo.Option[*models.EconomySettings], error)
	UpsertSettings(ctx context.Context, settings *models.EconomySettings) (*models.EconomySettings, error)
}

type EconomySettingsService struct {
	settingsRepo EconomySettingsRepository
}

func NewEconomySettingsService(repo EconomySettingsRepository) *EconomySettingsService {
	return &EconomySettingsService{settingsRepo: repo}
}

// GetEconomySettings returns the stored settings for a guild, or the fixed
// defaults when the guild has no row. Defaults are never written back.
func (s *EconomySettingsService) GetEconomySettings(
	ctx context.Context,
	guildID string,
) (*models.EconomySettings, error) {
	log.Printf("📋 Starting to get economy settings for guild: %s", guildID)
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	maybeSettings, err := s.settingsRepo.GetSettingsByGuildID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get economy settings: %w", err)
	}

	if !maybeSettings.IsPresent() {
		log.Printf("📋 Completed successfully - no stored settings for guild %s, using defaults", guildID)
		return models.DefaultEconomySettings(guildID), nil
	}

	log.Printf("📋 Completed successfully - retrieved economy settings for guild: %s", guildID)
	return maybeSettings.MustGet(), nil
}

// UpdateEconomySettings validates and upserts the full settings row for a
// guild. All three fields must be non-negative; max below min is accepted.
func (s *EconomySettingsService) UpdateEconomySettings(
	ctx context.Context,
	guildID string,
	cooldown, minAmount, maxAmount int,
) (*models.EconomySettings, error) {
	log.Printf("📋 Starting to update economy settings for guild: %s", guildID)
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}
	if cooldown < 0 || minAmount < 0 || maxAmount < 0 {
		return nil, fmt.Errorf("economy settings values cannot be negative")
	}

	saved, err := s.settingsRepo.UpsertSettings(ctx, &models.EconomySettings{
		GuildID:       guildID,
		WorkCooldown:  cooldown,
		WorkMinAmount: minAmount,
		WorkMaxAmount: maxAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert economy settings: %w", err)
	}

	log.Printf("📋 Completed successfully - updated economy settings for guild: %s", guildID)
	return saved, nil
}
