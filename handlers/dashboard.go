package handlers

import (
	"context"
	"fmt"
	"log"

	"deltaboard/appctx"
	"deltaboard/core"
	"deltaboard/models"
	"deltaboard/services"
)

type DashboardAPIHandler struct {
	authService    services.AuthService
	guildsService  services.GuildsService
	economyService services.EconomySettingsService
}

func NewDashboardAPIHandler(
	authService services.AuthService,
	guildsService services.GuildsService,
	economyService services.EconomySettingsService,
) *DashboardAPIHandler {
	return &DashboardAPIHandler{
		authService:    authService,
		guildsService:  guildsService,
		economyService: economyService,
	}
}

// AuthenticateWithCode exchanges an OAuth code for a session
func (h *DashboardAPIHandler) AuthenticateWithCode(ctx context.Context, code string) (*models.AuthSession, error) {
	log.Printf("🔐 Authenticating Discord OAuth code")
	session, err := h.authService.AuthenticateWithCode(ctx, code)
	if err != nil {
		log.Printf("❌ Failed to authenticate with Discord: %v", err)
		return nil, err
	}

	log.Printf("✅ Authenticated Discord user: %s", session.User.ID)
	return session, nil
}

// ListUserGuilds returns the guilds the caller manages in common with the bot
func (h *DashboardAPIHandler) ListUserGuilds(ctx context.Context) ([]*models.Guild, error) {
	userToken, ok := appctx.GetAccessToken(ctx)
	if !ok {
		return nil, fmt.Errorf("access token not found in context")
	}

	log.Printf("📋 Listing managed guilds for authenticated user")
	guilds, err := h.guildsService.ListManagedGuilds(ctx, userToken)
	if err != nil {
		log.Printf("❌ Failed to list managed guilds: %v", err)
		return nil, err
	}

	log.Printf("✅ Resolved %d managed guilds", len(guilds))
	return guilds, nil
}

// GetGuildInfo fetches a single guild's display metadata
func (h *DashboardAPIHandler) GetGuildInfo(ctx context.Context, guildID string) (*models.Guild, error) {
	log.Printf("📋 Getting guild info: %s", guildID)
	guild, err := h.guildsService.GetGuildInfo(ctx, guildID)
	if err != nil {
		log.Printf("❌ Failed to get guild info: %v", err)
		return nil, err
	}

	log.Printf("✅ Retrieved guild info: %s", guild.Name)
	return guild, nil
}

// GetEconomySettings returns economy settings for a guild the caller administers
func (h *DashboardAPIHandler) GetEconomySettings(
	ctx context.Context,
	guildID string,
) (*models.EconomySettings, error) {
	if err := h.requireGuildAdmin(ctx, guildID); err != nil {
		return nil, err
	}

	log.Printf("📋 Getting economy settings for guild: %s", guildID)
	settings, err := h.economyService.GetEconomySettings(ctx, guildID)
	if err != nil {
		log.Printf("❌ Failed to get economy settings: %v", err)
		return nil, err
	}

	log.Printf("✅ Retrieved economy settings for guild: %s", guildID)
	return settings, nil
}

// UpdateEconomySettings overwrites economy settings for a guild the caller administers
func (h *DashboardAPIHandler) UpdateEconomySettings(
	ctx context.Context,
	guildID string,
	cooldown, minAmount, maxAmount int,
) (*models.EconomySettings, error) {
	if err := h.requireGuildAdmin(ctx, guildID); err != nil {
		return nil, err
	}

	log.Printf("📋 Updating economy settings for guild: %s", guildID)
	settings, err := h.economyService.UpdateEconomySettings(ctx, guildID, cooldown, minAmount, maxAmount)
	if err != nil {
		log.Printf("❌ Failed to update economy settings: %v", err)
		return nil, err
	}

	log.Printf("✅ Updated economy settings for guild: %s", guildID)
	return settings, nil
}

// requireGuildAdmin re-verifies against Discord that the caller administers
// the target guild. The identity gate only proves who the caller is, not
// that they may touch this guild's settings.
func (h *DashboardAPIHandler) requireGuildAdmin(ctx context.Context, guildID string) error {
	userToken, ok := appctx.GetAccessToken(ctx)
	if !ok {
		return fmt.Errorf("access token not found in context")
	}

	isAdmin, err := h.guildsService.IsGuildAdmin(ctx, userToken, guildID)
	if err != nil {
		log.Printf("❌ Failed to verify admin status for guild %s: %v", guildID, err)
		return fmt.Errorf("failed to verify guild admin status: %w", err)
	}
	if !isAdmin {
		log.Printf("❌ Caller is not an administrator of guild: %s", guildID)
		return core.ErrForbidden
	}

	return nil
}
