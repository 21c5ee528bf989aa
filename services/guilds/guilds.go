package guilds

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"deltaboard/clients"
	"deltaboard/models"
)

type GuildsService struct {
	discordClient clients.DiscordClient
	botToken      string
}

func NewGuildsService(discordClient clients.DiscordClient, botToken string) *GuildsService {
	return &GuildsService{
		discordClient: discordClient,
		botToken:      botToken,
	}
}

// ListManagedGuilds returns the guilds the caller administers that the bot is
// also a member of, preserving the order of the caller's own guild list
func (s *GuildsService) ListManagedGuilds(ctx context.Context, userToken string) ([]*models.Guild, error) {
	log.Printf("📋 Starting to list managed guilds")

	userGuilds, err := s.discordClient.GetUserGuilds(ctx, "Bearer "+userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caller guilds: %w", err)
	}

	botGuilds, err := s.discordClient.GetUserGuilds(ctx, "Bot "+s.botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot guilds: %w", err)
	}

	botGuildIDs := make(map[string]struct{}, len(botGuilds))
	for _, guild := range botGuilds {
		botGuildIDs[guild.ID] = struct{}{}
	}

	managed := []*models.Guild{}
	for _, guild := range userGuilds {
		if !isAdministrator(guild.Permissions) {
			continue
		}
		if _, ok := botGuildIDs[guild.ID]; !ok {
			continue
		}
		managed = append(managed, &models.Guild{
			ID:      guild.ID,
			Name:    guild.Name,
			IconURL: models.GuildIconURL(guild.ID, guild.Icon),
		})
	}

	log.Printf("📋 Completed successfully - resolved %d managed guilds", len(managed))
	return managed, nil
}

// GetGuildInfo fetches a single guild's public metadata using the bot credential
func (s *GuildsService) GetGuildInfo(ctx context.Context, guildID string) (*models.Guild, error) {
	log.Printf("📋 Starting to get guild info: %s", guildID)

	guild, err := s.discordClient.GetGuildByID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}

	log.Printf("📋 Completed successfully - retrieved guild info: %s", guild.Name)
	return &models.Guild{
		ID:      guild.ID,
		Name:    guild.Name,
		IconURL: models.GuildIconURL(guild.ID, guild.Icon),
	}, nil
}

// IsGuildAdmin reports whether the caller holds the administrator bit in the
// given guild according to their own guild list
func (s *GuildsService) IsGuildAdmin(ctx context.Context, userToken, guildID string) (bool, error) {
	log.Printf("📋 Starting to check admin status for guild: %s", guildID)

	userGuilds, err := s.discordClient.GetUserGuilds(ctx, "Bearer "+userToken)
	if err != nil {
		return false, fmt.Errorf("failed to fetch caller guilds: %w", err)
	}

	for _, guild := range userGuilds {
		if guild.ID == guildID {
			isAdmin := isAdministrator(guild.Permissions)
			log.Printf("📋 Completed successfully - admin status for guild %s: %t", guildID, isAdmin)
			return isAdmin, nil
		}
	}

	log.Printf("📋 Completed successfully - caller is not a member of guild: %s", guildID)
	return false, nil
}

func isAdministrator(permissions int64) bool {
	return permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator
}
