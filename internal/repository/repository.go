package repository

import (
	"fmt"
	"sync"

	"zynta_referral/internal/model"
	"zynta_referral/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrReferrerNotFound = errors.New("referrer not found")

	ErrInvalidSeed = errors.New("invalid seed user")
)

const DefaultRewardPoints = 10

// Registry keeps every user in memory. Reads take the read lock; CreateUser
// runs its uniqueness checks, insert and referrer credit under the write lock.
type Registry struct {
	users   []*model.User
	byEmail map[string]*model.User
	byCode  map[string]*model.User
	nextID  int64
	reward  int
	codes   *CodeGenerator
	mu      sync.RWMutex
}

type Config struct {
	RewardPoints    int    `yaml:"rewardPoints"`
	SeedSampleUsers bool   `yaml:"seedSampleUsers"`
	SeedFile        string `yaml:"seedFile"`
}

// NewRegistry returns an empty registry. A nil codes generator falls back to
// one backed by a time-seeded math/rand source.
func NewRegistry(rewardPoints int, codes *CodeGenerator) *Registry {
	if rewardPoints <= 0 {
		rewardPoints = DefaultRewardPoints
	}
	if codes == nil {
		codes = NewCodeGenerator(nil)
	}

	return &Registry{
		byEmail: make(map[string]*model.User),
		byCode:  make(map[string]*model.User),
		nextID:  1,
		reward:  rewardPoints,
		codes:   codes,
	}
}

func New(cfg Config) (*Registry, error) {
	r := NewRegistry(cfg.RewardPoints, nil)

	var seed []model.User
	switch {
	case cfg.SeedFile != "":
		users, err := LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		seed = users
	case cfg.SeedSampleUsers:
		seed = SampleUsers(r.reward)
	}

	if err := r.Seed(seed); err != nil {
		return nil, fmt.Errorf("failed to seed registry: %w", err)
	}

	logger.Logger().Info("Registry initialized",
		zap.Int("users", len(seed)),
		zap.Int("reward_points", r.reward))

	return r, nil
}

func (r *Registry) RewardPoints() int {
	return r.reward
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

func (r *Registry) insert(user *model.User) {
	r.users = append(r.users, user)
	r.byEmail[user.Email] = user
	r.byCode[user.ReferralCode] = user
}

func (r *Registry) codeTaken(code string) bool {
	_, ok := r.byCode[code]
	return ok
}
