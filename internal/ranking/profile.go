package ranking

import (
	"math"

	"github.com/TOPG-DEV/burntheworld/internal/model"
)

type Curve int

const (
	Linear Curve = iota
	Sqrt
)

// Metric is one weighted input of a scoring profile. Weights across the four
// metrics of a profile must sum to 1.0.
type Metric struct {
	Weight float64
	Cap    float64
	Curve  Curve
}

// ScoringProfile is a named weight/cap table plus an output scale. The two
// shipped profiles intentionally differ; callers pick one explicitly.
type ScoringProfile struct {
	Name       string
	Topg       Metric
	Presale    Metric
	Referrals  Metric
	Engagement Metric
	Scale      float64
	RoundToInt bool
}

// LeaderboardProfile produces integer scores on a 0-10000 scale.
var LeaderboardProfile = ScoringProfile{
	Name:       "leaderboard",
	Topg:       Metric{Weight: 0.35, Cap: 200_000, Curve: Sqrt},
	Presale:    Metric{Weight: 0.25, Cap: 2.0},
	Referrals:  Metric{Weight: 0.25, Cap: 15},
	Engagement: Metric{Weight: 0.15, Cap: 100},
	Scale:      10_000,
	RoundToInt: true,
}

// VerificationProfile produces float scores on a 0-100 scale.
var VerificationProfile = ScoringProfile{
	Name:       "verification",
	Topg:       Metric{Weight: 0.4, Cap: 1_000_000},
	Presale:    Metric{Weight: 0.3, Cap: 2.0},
	Referrals:  Metric{Weight: 0.2, Cap: 10},
	Engagement: Metric{Weight: 0.1, Cap: 50},
	Scale:      100,
}

// Normalize clamps value/max to [0, 1]. Inputs are assumed non-negative.
func Normalize(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(value/max, 1)
}

// NonlinearNormalize is a square-root scaled variant used where large
// holdings should have diminishing returns. Equals 1 exactly at the cap.
func NonlinearNormalize(value, max float64) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	return math.Min(math.Sqrt(value)/math.Sqrt(max), 1)
}

func (m Metric) normalize(value float64) float64 {
	if m.Curve == Sqrt {
		return NonlinearNormalize(value, m.Cap)
	}
	return Normalize(value, m.Cap)
}

// Score computes the weighted power score for the given metrics on the
// profile's output scale. Same metrics always yield the same score.
func (p ScoringProfile) Score(m model.UserMetrics) float64 {
	raw := p.Topg.normalize(m.TopgBalance)*p.Topg.Weight +
		p.Presale.normalize(m.TotalPresaleAmount)*p.Presale.Weight +
		p.Referrals.normalize(float64(m.ReferralCount))*p.Referrals.Weight +
		p.Engagement.normalize(m.TelegramEngagement)*p.Engagement.Weight

	score := raw * p.Scale
	if p.RoundToInt {
		score = math.Round(score)
	}
	return score
}

// TitleFor maps a score to its rank title. Thresholds are defined on the
// 0-10000 scale; boundary values resolve to the higher bracket.
func TitleFor(score float64) string {
	switch {
	case score >= 9000:
		return "TOPG"
	case score >= 7100:
		return "UNPLUGGED G"
	case score >= 4100:
		return "Matrix Hacker"
	case score >= 2100:
		return "Red Pilled"
	default:
		return "G"
	}
}
