package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zynta_referral/internal/model"
	"zynta_referral/internal/repository"
	"zynta_referral/pkg/logger"

	"go.uber.org/zap"
)

const (
	EventUserRegistered   = "user_registered"
	EventReferralRewarded = "referral_rewarded"
)

type UserService struct {
	repo      UserRepository
	publisher Publisher
}

// NewUserService wires the service to its store. publisher may be nil.
func NewUserService(repo UserRepository, publisher Publisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

func (s *UserService) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrReferralCodeRequired
	}

	user, err := s.repo.GetUserByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by referral code: %w", err)
	}
	return user, nil
}

// RegisterUser validates the request and stores the user, crediting the
// referrer when a referral code is given. Checks run in a fixed order and the
// first failure is returned.
func (s *UserService) RegisterUser(ctx context.Context, user model.NewUser) (*model.Registration, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	user.ReferralCode = repository.NormalizeReferralCode(user.ReferralCode)

	if user.Name == "" {
		return nil, ErrNameRequired
	}
	if user.Email == "" {
		return nil, ErrEmailRequired
	}
	if !model.IsValidEmail(user.Email) {
		return nil, ErrInvalidEmail
	}
	user.Email = model.NormalizeEmail(user.Email)

	reg, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, ErrEmailAlreadyRegistered
		case errors.Is(err, repository.ErrReferrerNotFound):
			return nil, ErrInvalidReferralCode
		default:
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	fields := []zap.Field{
		zap.Int64("user_id", reg.User.ID),
		zap.String("referral_code", reg.User.ReferralCode),
	}
	if reg.Referrer != nil {
		fields = append(fields,
			zap.String("referrer", reg.Referrer.Name),
			zap.Int("points_awarded", reg.Referrer.PointsAwarded))
	}
	logger.Logger().Info("user registered", fields...)

	s.notify(user.ReferralCode, reg)

	return reg, nil
}

func (s *UserService) notify(referrerCode string, reg *model.Registration) {
	if s.publisher == nil {
		return
	}

	s.publisher.Publish(Message{
		Type: EventUserRegistered,
		Payload: map[string]any{
			"id":           reg.User.ID,
			"name":         reg.User.Name,
			"referralCode": reg.User.ReferralCode,
		},
	})

	if reg.Referrer != nil {
		s.publisher.Publish(Message{
			Type: EventReferralRewarded,
			Payload: map[string]any{
				"referrer":      reg.Referrer.Name,
				"referralCode":  referrerCode,
				"pointsAwarded": reg.Referrer.PointsAwarded,
				"referredId":    reg.User.ID,
			},
		})
	}
}
