package repository

import (
	"testing"
	"time"

	"github.com/TOPG-DEV/burntheworld/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProfileUpdates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		existing *model.UserEntry
		incoming *model.UserEntry
		expected map[string]interface{}
	}{
		{
			name: "empty incoming fields keep stored values",
			existing: &model.UserEntry{
				Wallet:   "wallet-1",
				Telegram: "@alice",
				Username: "alice",
				Email:    "alice@example.com",
			},
			incoming: &model.UserEntry{
				Wallet:   "wallet-1",
				Telegram: "@alice",
			},
			expected: map[string]interface{}{
				"updated_at": now,
				"telegram":   "@alice",
			},
		},
		{
			name: "non-empty incoming fields overwrite",
			existing: &model.UserEntry{
				Wallet:   "wallet-1",
				Telegram: "@alice",
				Name:     "Alice",
			},
			incoming: &model.UserEntry{
				Wallet:   "wallet-1",
				Telegram: "@alice",
				Username: "alice_new",
				Name:     "Alice A.",
				Email:    "new@example.com",
			},
			expected: map[string]interface{}{
				"updated_at": now,
				"telegram":   "@alice",
				"username":   "alice_new",
				"name":       "Alice A.",
				"email":      "new@example.com",
			},
		},
		{
			name: "telegram-matched row adopts the submitted wallet",
			existing: &model.UserEntry{
				Wallet:   "old-wallet",
				Telegram: "@alice",
			},
			incoming: &model.UserEntry{
				Wallet:   "new-wallet",
				Telegram: "@alice",
			},
			expected: map[string]interface{}{
				"updated_at": now,
				"wallet":     "new-wallet",
				"telegram":   "@alice",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, profileUpdates(tc.existing, tc.incoming, now))
		})
	}
}

// Merges never touch referral_count; the only credit path is the first-insert
// branch guarded by shouldCreditReferrer.
func TestProfileUpdatesNeverTouchReferralCount(t *testing.T) {
	now := time.Now().UTC()
	existing := &model.UserEntry{Wallet: "wallet-1", Telegram: "@alice", ReferralCount: 3}
	incoming := &model.UserEntry{Wallet: "wallet-1", Telegram: "@alice", ReferredBy: "@bob"}

	updates := profileUpdates(existing, incoming, now)

	assert.NotContains(t, updates, "referral_count")
	assert.NotContains(t, updates, "referred_by")
}

func TestShouldCreditReferrer(t *testing.T) {
	testCases := []struct {
		name     string
		entry    *model.UserEntry
		expected bool
	}{
		{
			name:     "referrer named",
			entry:    &model.UserEntry{Telegram: "@alice", ReferredBy: "@bob"},
			expected: true,
		},
		{
			name:     "no referrer",
			entry:    &model.UserEntry{Telegram: "@alice"},
			expected: false,
		},
		{
			name:     "self referral",
			entry:    &model.UserEntry{Telegram: "@alice", ReferredBy: "@alice"},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, shouldCreditReferrer(tc.entry))
		})
	}
}
