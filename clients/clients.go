package clients

import "context"

// DiscordOAuthResponse represents Discord's OAuth2 token endpoint response
type DiscordOAuthResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// DiscordUser represents the identity behind an authorization token
type DiscordUser struct {
	ID            string
	Username      string
	Discriminator string
	GlobalName    string
	Avatar        string
}

// DiscordGuild represents a guild as seen by the token owner. Permissions
// carries the caller's permission bitmask and is only populated on guild
// listings, not on single-guild fetches.
type DiscordGuild struct {
	ID          string
	Name        string
	Icon        string
	Owner       bool
	Permissions int64
}

// DiscordClient defines the interface for Discord API operations.
// Authorization tokens are passed fully qualified ("Bearer xxx" or "Bot xxx")
// so the same methods serve user and bot credentials.
type DiscordClient interface {
	ExchangeCodeForToken(ctx context.Context, clientID, clientSecret, code, redirectURL string) (*DiscordOAuthResponse, error)
	GetCurrentUser(ctx context.Context, authToken string) (*DiscordUser, error)
	GetUserGuilds(ctx context.Context, authToken string) ([]*DiscordGuild, error)
	GetGuildByID(ctx context.Context, guildID string) (*DiscordGuild, error)
}
