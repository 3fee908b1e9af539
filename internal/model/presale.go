package model

import "time"

type PresaleEntry struct {
	ID        int64
	Wallet    string
	Amount    float64
	Tx        string
	Tier      string
	CreatedAt time.Time
}

// LeaderSubmission is a leader-application form entry.
type LeaderSubmission struct {
	ID        string
	Telegram  string
	Wallet    string
	Answers   []string
	CreatedAt time.Time
}
