package service

import (
	"context"
	"errors"

	"zynta_referral/internal/model"
)

var (
	ErrNameRequired           = errors.New("name is required")
	ErrEmailRequired          = errors.New("email is required")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidReferralCode    = errors.New("invalid referral code")

	ErrReferralCodeRequired = errors.New("referral code is required")
	ErrUserNotFound         = errors.New("user not found")
)

type UserServiceI interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*model.User, error)
	RegisterUser(ctx context.Context, user model.NewUser) (*model.Registration, error)
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*model.User, error)
	CreateUser(ctx context.Context, user model.NewUser) (*model.Registration, error)
}

type Publisher interface {
	Publish(msg Message)
}
