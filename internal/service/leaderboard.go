package service

import (
	"context"
	"fmt"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/ranking"
)

type LeaderboardService struct {
	repo    UserRepository
	profile ranking.ScoringProfile
}

func NewLeaderboardService(repo UserRepository) *LeaderboardService {
	return &LeaderboardService{
		repo:    repo,
		profile: ranking.LeaderboardProfile,
	}
}

// Leaderboard scores all verified users and returns them ranked.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	users, err := s.repo.GetVerifiedUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get verified users: %w", err)
	}

	return ranking.BuildLeaderboard(s.profile, users), nil
}
