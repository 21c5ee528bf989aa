package appctx

import (
	"context"

	"deltaboard/models"
)

// Context keys for request-scoped authentication state
type contextKey string

const (
	UserContextKey        contextKey = "discord_user"
	AccessTokenContextKey contextKey = "discord_access_token"
)

// SetUser adds the authenticated Discord user to the request context
func SetUser(ctx context.Context, user *models.DiscordUser) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// GetUser extracts the authenticated Discord user from the request context
func GetUser(ctx context.Context) (*models.DiscordUser, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.DiscordUser)
	return user, ok
}

// SetAccessToken adds the caller's raw bearer token to the request context
func SetAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenContextKey, token)
}

// GetAccessToken extracts the caller's raw bearer token from the request context
func GetAccessToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenContextKey).(string)
	return token, ok
}
