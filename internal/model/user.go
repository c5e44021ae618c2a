package model

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode"`
	Points       int    `json:"points"`
	Referrals    int    `json:"referrals"`
}

// NewUser is a validated registration ready to be stored.
// ReferralCode is the code of the referrer, empty when none was given.
type NewUser struct {
	Name         string
	Email        string
	ReferralCode string
}

type ReferrerReward struct {
	Name          string
	PointsAwarded int
}

type Registration struct {
	User     User
	Referrer *ReferrerReward
}
