package ranking

import (
	"testing"

	"github.com/TOPG-DEV/burntheworld/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.5, Normalize(1.0, 2.0))
	assert.Equal(t, 1.0, Normalize(2.0, 2.0))
	assert.Equal(t, 1.0, Normalize(5.0, 2.0), "clamps at cap")
	assert.Equal(t, 0.0, Normalize(0, 100))
	assert.Equal(t, 0.0, Normalize(10, 0), "degenerate cap")
}

func TestNonlinearNormalize(t *testing.T) {
	assert.InDelta(t, 0.5, NonlinearNormalize(50_000, 200_000), 1e-9)
	assert.Equal(t, 1.0, NonlinearNormalize(200_000, 200_000))
	assert.Equal(t, 1.0, NonlinearNormalize(400_000, 200_000))
	assert.Equal(t, 0.0, NonlinearNormalize(0, 200_000))

	prev := 0.0
	for v := 0.0; v <= 250_000; v += 1000 {
		cur := NonlinearNormalize(v, 200_000)
		assert.GreaterOrEqual(t, cur, prev, "monotonically non-decreasing at v=%f", v)
		prev = cur
	}
}

func TestLeaderboardProfileScore(t *testing.T) {
	tests := []struct {
		name     string
		metrics  model.UserMetrics
		expected float64
		title    string
	}{
		{
			name:     "zero metrics",
			metrics:  model.UserMetrics{},
			expected: 0,
			title:    "G",
		},
		{
			name: "mid-range profile",
			metrics: model.UserMetrics{
				TopgBalance:        50_000,
				TotalPresaleAmount: 1.0,
				ReferralCount:      5,
				TelegramEngagement: 50,
			},
			// sqrt(50000/200000)*0.35 + 0.5*0.25 + (5/15)*0.25 + 0.5*0.15
			expected: 4583,
			title:    "Matrix Hacker",
		},
		{
			name: "all metrics at cap",
			metrics: model.UserMetrics{
				TopgBalance:        200_000,
				TotalPresaleAmount: 2.0,
				ReferralCount:      15,
				TelegramEngagement: 100,
			},
			expected: 10_000,
			title:    "TOPG",
		},
		{
			name: "metrics above cap clamp",
			metrics: model.UserMetrics{
				TopgBalance:        9_999_999,
				TotalPresaleAmount: 50,
				ReferralCount:      1000,
				TelegramEngagement: 9000,
			},
			expected: 10_000,
			title:    "TOPG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := LeaderboardProfile.Score(tt.metrics)
			assert.Equal(t, tt.expected, score)
			assert.Equal(t, tt.title, TitleFor(score))
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 10_000.0)
		})
	}
}

func TestVerificationProfileScore(t *testing.T) {
	score := VerificationProfile.Score(model.UserMetrics{
		TopgBalance:        1_000_000,
		TotalPresaleAmount: 2.0,
		ReferralCount:      10,
		TelegramEngagement: 50,
	})
	assert.InDelta(t, 100.0, score, 1e-9, "caps combine to the full 0-100 scale")

	score = VerificationProfile.Score(model.UserMetrics{
		TopgBalance:        500_000,
		TotalPresaleAmount: 1.0,
		ReferralCount:      5,
		TelegramEngagement: 25,
	})
	assert.InDelta(t, 50.0, score, 1e-9)
}

func TestScoreIdempotent(t *testing.T) {
	m := model.UserMetrics{
		TopgBalance:        123_456,
		TotalPresaleAmount: 1.5,
		ReferralCount:      7,
		TelegramEngagement: 42,
	}
	first := LeaderboardProfile.Score(m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, LeaderboardProfile.Score(m))
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		score float64
		title string
	}{
		{10_000, "TOPG"},
		{9000, "TOPG"},
		{8999, "UNPLUGGED G"},
		{7100, "UNPLUGGED G"},
		{7099, "Matrix Hacker"},
		{4100, "Matrix Hacker"},
		{4099, "Red Pilled"},
		{2100, "Red Pilled"},
		{2099, "G"},
		{0, "G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.title, TitleFor(tt.score), "score %f", tt.score)
	}
}

func TestTitleMonotonic(t *testing.T) {
	order := map[string]int{"G": 0, "Red Pilled": 1, "Matrix Hacker": 2, "UNPLUGGED G": 3, "TOPG": 4}

	prev := 0
	for score := 0.0; score <= 10_000; score += 1 {
		tier := order[TitleFor(score)]
		assert.GreaterOrEqual(t, tier, prev, "tier must never decrease, score %f", score)
		prev = tier
	}
}
