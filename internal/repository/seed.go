package repository

import (
	"os"

	"zynta_referral/internal/model"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// SampleUsers is the demo data set the service starts with when
// referral.seedSampleUsers is enabled. Points are scaled to rewardPoints so
// the set stays consistent with the configured reward.
func SampleUsers(rewardPoints int) []model.User {
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", ReferralCode: "ABC123", Points: 0, Referrals: 0},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", ReferralCode: "DEF456", Points: rewardPoints, Referrals: 1},
		{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", ReferralCode: "GHI789", Points: 2 * rewardPoints, Referrals: 2},
	}
}

// LoadSeedFile reads a JSON array of users in the same shape the API returns.
func LoadSeedFile(path string) ([]model.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, errors.Wrapf(err, "decode seed file %s", path)
	}

	return users, nil
}
