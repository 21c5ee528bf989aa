package auth

import (
	"context"
	"fmt"
	"log"

	"deltaboard/clients"
	"deltaboard/models"
)

type AuthService struct {
	discordClient       clients.DiscordClient
	discordClientID     string
	discordClientSecret string
	discordRedirectURI  string
}

func NewAuthService(
	discordClient clients.DiscordClient,
	discordClientID, discordClientSecret, discordRedirectURI string,
) *AuthService {
	return &AuthService{
		discordClient:       discordClient,
		discordClientID:     discordClientID,
		discordClientSecret: discordClientSecret,
		discordRedirectURI:  discordRedirectURI,
	}
}

// AuthenticateWithCode exchanges a one-time OAuth authorization code for an
// access token and resolves the identity behind it
func (s *AuthService) AuthenticateWithCode(ctx context.Context, code string) (*models.AuthSession, error) {
	log.Printf("📋 Starting to exchange Discord OAuth code")
	if code == "" {
		return nil, fmt.Errorf("discord auth code cannot be empty")
	}

	oauthResponse, err := s.discordClient.ExchangeCodeForToken(
		ctx,
		s.discordClientID,
		s.discordClientSecret,
		code,
		s.discordRedirectURI,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange OAuth code with Discord: %w", err)
	}

	if oauthResponse.AccessToken == "" {
		return nil, fmt.Errorf("access token not found in Discord OAuth response")
	}

	tokenType := oauthResponse.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	discordUser, err := s.discordClient.GetCurrentUser(ctx, tokenType+" "+oauthResponse.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Discord user for new token: %w", err)
	}

	log.Printf("📋 Completed successfully - authenticated Discord user: %s", discordUser.ID)
	return &models.AuthSession{
		AccessToken: oauthResponse.AccessToken,
		User: &models.DiscordUser{
			ID:            discordUser.ID,
			Username:      discordUser.Username,
			Discriminator: discordUser.Discriminator,
			GlobalName:    discordUser.GlobalName,
			Avatar:        discordUser.Avatar,
		},
	}, nil
}
