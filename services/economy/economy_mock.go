package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deltaboard/models"
)

type MockEconomySettingsService struct {
	mock.Mock
}

func (m *MockEconomySettingsService) GetEconomySettings(
	ctx context.Context,
	guildID string,
) (*models.EconomySettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EconomySettings), args.Error(1)
}

func (m *MockEconomySettingsService) UpdateEconomySettings(
	ctx context.Context,
	guildID string,
	cooldown, minAmount, maxAmount int,
) (*models.EconomySettings, error) {
	args := m.Called(ctx, guildID, cooldown, minAmount, maxAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EconomySettings), args.Error(1)
}
