package model

import "time"

// UserEntry is one funnel profile, keyed by wallet address. Telegram is a
// secondary lookup key used for referral attribution.
type UserEntry struct {
	Wallet             string
	Telegram           string
	Username           string
	Name               string
	Email              string
	ReferredBy         string
	TopgBalance        float64
	UnpluggedRounds    int
	TotalPresaleAmount float64
	ReferralCount      int
	TelegramEngagement float64
	Rank               string
	Verified           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UserMetrics are the four raw inputs of the power score.
type UserMetrics struct {
	TopgBalance        float64
	TotalPresaleAmount float64
	ReferralCount      int
	TelegramEngagement float64
}

// VerifiedStats are the derived fields persisted after a successful
// verification pass.
type VerifiedStats struct {
	Rank               string
	TopgBalance        float64
	UnpluggedRounds    int
	ReferralCount      int
	TelegramEngagement float64
}

type LeaderboardEntry struct {
	Username    string
	Wallet      string
	TopgBalance float64
	BuyIn       float64
	Referrals   int
	Engagement  float64
	PowerScore  int
	Title       string
	NumericRank int
}

type VerificationResult struct {
	Verified   bool
	Rank       string
	Wallet     string
	Telegram   string
	Topg       float64
	Rounds     int
	Referrals  int
	TotalPaid  float64
	Engagement float64
	Message    string
	Reason     string
}
