package repository

import (
	"context"
	"strings"

	"zynta_referral/internal/model"

	"github.com/pkg/errors"
)

func (r *Registry) ListUsers(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, len(r.users))
	for i, user := range r.users {
		u := *user
		users[i] = &u
	}

	return users, nil
}

func (r *Registry) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byCode[NormalizeReferralCode(code)]
	if !ok {
		return nil, ErrNotFound
	}

	u := *user
	return &u, nil
}

// CreateUser stores a new user and credits the referrer named by
// in.ReferralCode, if any. Nothing is written when an error is returned.
func (r *Registry) CreateUser(ctx context.Context, in model.NewUser) (*model.Registration, error) {
	email := model.NormalizeEmail(in.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}

	var referrer *model.User
	if code := NormalizeReferralCode(in.ReferralCode); code != "" {
		ref, ok := r.byCode[code]
		if !ok {
			return nil, ErrReferrerNotFound
		}
		referrer = ref
	}

	user := &model.User{
		ID:           r.nextID,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		ReferralCode: r.codes.Generate(r.codeTaken),
	}
	r.nextID++
	r.insert(user)

	out := &model.Registration{User: *user}

	if referrer != nil {
		referrer.Points += r.reward
		referrer.Referrals++

		out.Referrer = &model.ReferrerReward{
			Name:          referrer.Name,
			PointsAwarded: r.reward,
		}
	}

	return out, nil
}

// Seed loads pre-existing users. Users with a zero ID are numbered in order;
// explicit IDs must be greater than every ID already assigned, so ids keep
// increasing in insertion order. The whole batch is rejected if any user
// would break a registry invariant.
func (r *Registry) Seed(users []model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := r.nextID
	emails := make(map[string]struct{}, len(users))
	codes := make(map[string]struct{}, len(users))

	batch := make([]*model.User, 0, len(users))
	for i, u := range users {
		u.Name = strings.TrimSpace(u.Name)
		u.Email = model.NormalizeEmail(u.Email)
		u.ReferralCode = NormalizeReferralCode(u.ReferralCode)

		switch {
		case u.Name == "":
			return errors.Wrapf(ErrInvalidSeed, "user %d: empty name", i)
		case !model.IsValidEmail(u.Email):
			return errors.Wrapf(ErrInvalidSeed, "user %d: invalid email %q", i, u.Email)
		case !IsValidReferralCode(u.ReferralCode):
			return errors.Wrapf(ErrInvalidSeed, "user %d: invalid referral code %q", i, u.ReferralCode)
		case u.Points < 0 || u.Referrals < 0:
			return errors.Wrapf(ErrInvalidSeed, "user %d: negative points or referrals", i)
		case u.Points != u.Referrals*r.reward:
			return errors.Wrapf(ErrInvalidSeed, "user %d: %d points for %d referrals", i, u.Points, u.Referrals)
		case u.ID < 0:
			return errors.Wrapf(ErrInvalidSeed, "user %d: negative id", i)
		}

		if _, dup := emails[u.Email]; dup || r.byEmail[u.Email] != nil {
			return errors.Wrapf(ErrInvalidSeed, "user %d: duplicate email %q", i, u.Email)
		}
		if _, dup := codes[u.ReferralCode]; dup || r.codeTaken(u.ReferralCode) {
			return errors.Wrapf(ErrInvalidSeed, "user %d: duplicate referral code %q", i, u.ReferralCode)
		}

		if u.ID == 0 {
			u.ID = nextID
		}
		if u.ID < nextID {
			return errors.Wrapf(ErrInvalidSeed, "user %d: id %d not after %d", i, u.ID, nextID-1)
		}
		nextID = u.ID + 1

		emails[u.Email] = struct{}{}
		codes[u.ReferralCode] = struct{}{}

		user := u
		batch = append(batch, &user)
	}

	for _, user := range batch {
		r.insert(user)
	}
	r.nextID = nextID

	return nil
}
