package ranking

import (
	"sort"

	"github.com/TOPG-DEV/burntheworld/internal/model"
)

// BuildLeaderboard scores the given users with the profile, drops zero
// scorers, sorts descending (ties keep input order) and assigns 1-based
// numeric ranks.
func BuildLeaderboard(p ScoringProfile, users []*model.UserEntry) []*model.LeaderboardEntry {
	entries := make([]*model.LeaderboardEntry, 0, len(users))

	for _, u := range users {
		score := p.Score(model.UserMetrics{
			TopgBalance:        u.TopgBalance,
			TotalPresaleAmount: u.TotalPresaleAmount,
			ReferralCount:      u.ReferralCount,
			TelegramEngagement: u.TelegramEngagement,
		})
		if score <= 0 {
			continue
		}

		username := u.Username
		if username == "" {
			username = u.Telegram
		}
		if username == "" {
			username = u.Wallet
		}

		entries = append(entries, &model.LeaderboardEntry{
			Username:    username,
			Wallet:      u.Wallet,
			TopgBalance: u.TopgBalance,
			BuyIn:       u.TotalPresaleAmount,
			Referrals:   u.ReferralCount,
			Engagement:  u.TelegramEngagement,
			PowerScore:  int(score),
			Title:       TitleFor(score),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PowerScore > entries[j].PowerScore
	})

	for i, e := range entries {
		e.NumericRank = i + 1
	}

	return entries
}
