package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deltaboard/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) AuthenticateWithCode(ctx context.Context, code string) (*models.AuthSession, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthSession), args.Error(1)
}
