package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deltaboard/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

// ExchangeCodeForToken mocks the Discord OAuth code exchange
func (m *MockDiscordClient) ExchangeCodeForToken(
	ctx context.Context,
	clientID, clientSecret, code, redirectURL string,
) (*clients.DiscordOAuthResponse, error) {
	args := m.Called(ctx, clientID, clientSecret, code, redirectURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordOAuthResponse), args.Error(1)
}

// GetCurrentUser mocks resolving the identity behind a token
func (m *MockDiscordClient) GetCurrentUser(ctx context.Context, authToken string) (*clients.DiscordUser, error) {
	args := m.Called(ctx, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordUser), args.Error(1)
}

// GetUserGuilds mocks listing the token owner's guilds
func (m *MockDiscordClient) GetUserGuilds(ctx context.Context, authToken string) ([]*clients.DiscordGuild, error) {
	args := m.Called(ctx, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clients.DiscordGuild), args.Error(1)
}

// GetGuildByID mocks fetching specific Discord guild by ID
func (m *MockDiscordClient) GetGuildByID(ctx context.Context, guildID string) (*clients.DiscordGuild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordGuild), args.Error(1)
}
