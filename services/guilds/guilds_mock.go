package guilds

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deltaboard/models"
)

type MockGuildsService struct {
	mock.Mock
}

func (m *MockGuildsService) ListManagedGuilds(ctx context.Context, userToken string) ([]*models.Guild, error) {
	args := m.Called(ctx, userToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guild), args.Error(1)
}

func (m *MockGuildsService) GetGuildInfo(ctx context.Context, guildID string) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockGuildsService) IsGuildAdmin(ctx context.Context, userToken, guildID string) (bool, error) {
	args := m.Called(ctx, userToken, guildID)
	return args.Bool(0), args.Error(1)
}
