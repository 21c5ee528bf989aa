package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"deltaboard/clients"

	"github.com/bwmarrin/discordgo"
)

var (
	discordAPIBase  = "https://discord.com/api"
	discordOAuthURL = discordAPIBase + "/oauth2/token"
)

// maximum page size Discord allows on the user guilds listing
const userGuildsPageLimit = 200

// DiscordClient implements the clients.DiscordClient interface
type DiscordClient struct {
	// httpClient is used for OAuth2 token exchange since discordgo doesn't support it
	httpClient *http.Client
	// botToken is the Discord bot token used for elevated API requests
	botToken string
}

// NewDiscordClient creates a new Discord client
func NewDiscordClient(httpClient *http.Client, botToken string) clients.DiscordClient {
	return &DiscordClient{
		httpClient: httpClient,
		botToken:   botToken,
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for access tokens.
// Note: This still uses HTTP directly as discordgo doesn't support OAuth2 token exchange
func (c *DiscordClient) ExchangeCodeForToken(
	ctx context.Context,
	clientID, clientSecret, code, redirectURL string,
) (*clients.DiscordOAuthResponse, error) {
	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", redirectURL)
	data.Set("scope", "identify guilds")

	req, err := http.NewRequestWithContext(ctx, "POST", discordOAuthURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute OAuth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("OAuth request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OAuth response body: %w", err)
	}

	var oauthResp clients.DiscordOAuthResponse
	if err := json.Unmarshal(body, &oauthResp); err != nil {
		return nil, fmt.Errorf("failed to decode OAuth response: %w", err)
	}

	return &oauthResp, nil
}

// GetCurrentUser resolves the identity behind an authorization token
func (c *DiscordClient) GetCurrentUser(ctx context.Context, authToken string) (*clients.DiscordUser, error) {
	sdkClient, err := c.newSession(authToken)
	if err != nil {
		return nil, err
	}

	discordUser, err := sdkClient.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	return &clients.DiscordUser{
		ID:            discordUser.ID,
		Username:      discordUser.Username,
		Discriminator: discordUser.Discriminator,
		GlobalName:    discordUser.GlobalName,
		Avatar:        discordUser.Avatar,
	}, nil
}

// GetUserGuilds lists the guilds the token owner belongs to, in the order
// Discord returns them
func (c *DiscordClient) GetUserGuilds(ctx context.Context, authToken string) ([]*clients.DiscordGuild, error) {
	sdkClient, err := c.newSession(authToken)
	if err != nil {
		return nil, err
	}

	discordGuilds, err := sdkClient.UserGuilds(userGuildsPageLimit, "", "", false, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user guilds: %w", err)
	}

	guilds := make([]*clients.DiscordGuild, 0, len(discordGuilds))
	for _, g := range discordGuilds {
		guilds = append(guilds, &clients.DiscordGuild{
			ID:          g.ID,
			Name:        g.Name,
			Icon:        g.Icon,
			Owner:       g.Owner,
			Permissions: g.Permissions,
		})
	}

	return guilds, nil
}

// GetGuildByID fetches specific guild information using the bot token
func (c *DiscordClient) GetGuildByID(ctx context.Context, guildID string) (*clients.DiscordGuild, error) {
	sdkClient, err := c.newSession("Bot " + c.botToken)
	if err != nil {
		return nil, err
	}

	discordGuild, err := sdkClient.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild: %w", err)
	}
	if discordGuild == nil {
		return nil, fmt.Errorf("guild not found")
	}

	return &clients.DiscordGuild{
		ID:   discordGuild.ID,
		Name: discordGuild.Name,
		Icon: discordGuild.Icon,
	}, nil
}

// newSession builds a discordgo session bound to our HTTP client. The token
// must already carry its type prefix.
func (c *DiscordClient) newSession(authToken string) (*discordgo.Session, error) {
	sdkClient, err := discordgo.New(authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	sdkClient.Client = c.httpClient
	return sdkClient, nil
}
