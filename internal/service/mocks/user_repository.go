package mocks

import (
	"context"

	"zynta_referral/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	args := m.Called(ctx, code)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user model.NewUser) (*model.Registration, error) {
	args := m.Called(ctx, user)
	reg, _ := args.Get(0).(*model.Registration)
	return reg, args.Error(1)
}
