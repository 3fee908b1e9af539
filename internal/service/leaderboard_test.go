package service

import (
	"context"
	"testing"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLeaderboardService_Leaderboard(t *testing.T) {
	repo := &mocks.MockUserRepository{}
	service := NewLeaderboardService(repo)

	repo.On("GetVerifiedUsers", mock.Anything).Return([]*model.UserEntry{
		{Wallet: "whale", Username: "whale", Verified: true, TopgBalance: 200_000, TotalPresaleAmount: 2.0},
		{Wallet: "idle", Username: "idle", Verified: true},
		{Wallet: "minnow", Username: "minnow", Verified: true, TotalPresaleAmount: 0.5},
	}, nil)

	board, err := service.Leaderboard(context.Background())
	assert.NoError(t, err)

	// the zero-score verified user is excluded entirely
	assert.Len(t, board, 2)
	assert.Equal(t, "whale", board[0].Username)
	assert.Equal(t, 1, board[0].NumericRank)
	assert.Equal(t, "minnow", board[1].Username)
	assert.Equal(t, 2, board[1].NumericRank)
	assert.Greater(t, board[0].PowerScore, board[1].PowerScore)

	repo.AssertExpectations(t)
}

func TestLeaderboardService_RepositoryError(t *testing.T) {
	repo := &mocks.MockUserRepository{}
	service := NewLeaderboardService(repo)

	repo.On("GetVerifiedUsers", mock.Anything).Return(nil, assert.AnError)

	board, err := service.Leaderboard(context.Background())
	assert.Error(t, err)
	assert.Nil(t, board)
}
