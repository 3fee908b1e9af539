package service

import (
	"context"
	"testing"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/repository"
	"github.com/TOPG-DEV/burntheworld/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_RegisterProfile(t *testing.T) {
	tests := []struct {
		name          string
		entry         *model.UserEntry
		mockSetup     func(repo *mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:          "missing wallet",
			entry:         &model.UserEntry{Telegram: "neo"},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrMissingFields,
		},
		{
			name:          "missing telegram",
			entry:         &model.UserEntry{Wallet: "wallet1"},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrMissingFields,
		},
		{
			name:          "blank telegram after trim",
			entry:         &model.UserEntry{Wallet: "wallet1", Telegram: "   "},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrMissingFields,
		},
		{
			name: "handles are normalized before persisting",
			entry: &model.UserEntry{
				Wallet:     " wallet1 ",
				Telegram:   " Neo ",
				ReferredBy: "MORPHEUS",
				Username:   " TheOne ",
			},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("UpsertProfile", mock.Anything, mock.MatchedBy(func(e *model.UserEntry) bool {
					return e.Wallet == "wallet1" &&
						e.Telegram == "neo" &&
						e.ReferredBy == "morpheus" &&
						e.Username == "TheOne"
				})).Return(&model.UserEntry{Wallet: "wallet1", Telegram: "neo"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockUserRepository{}
			service := NewUserService(repo)

			tt.mockSetup(repo)

			saved, err := service.RegisterProfile(context.Background(), tt.entry)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, saved)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_SetEngagement(t *testing.T) {
	repo := &mocks.MockUserRepository{}
	service := NewUserService(repo)

	assert.ErrorIs(t, service.SetEngagement(context.Background(), "", 10), ErrMissingFields)
	assert.ErrorIs(t, service.SetEngagement(context.Background(), "wallet1", -1), ErrMissingFields)

	repo.On("SetEngagement", mock.Anything, "wallet1", 42.0).Return(nil)
	assert.NoError(t, service.SetEngagement(context.Background(), "wallet1", 42.0))
	repo.AssertExpectations(t)
}

func TestUserService_SetEngagementUnknownWallet(t *testing.T) {
	repo := &mocks.MockUserRepository{}
	service := NewUserService(repo)

	repo.On("SetEngagement", mock.Anything, "ghost", 5.0).Return(repository.ErrNotFound)

	err := service.SetEngagement(context.Background(), "ghost", 5.0)
	assert.ErrorIs(t, err, ErrUserNotFound)
	repo.AssertExpectations(t)
}

func TestUserService_SubmitLeaderApplication(t *testing.T) {
	repo := &mocks.MockUserRepository{}
	service := NewUserService(repo)

	_, err := service.SubmitLeaderApplication(context.Background(), &model.LeaderSubmission{
		Telegram: "neo",
		Wallet:   "wallet1",
		Answers:  []string{"one", "two"},
	})
	assert.ErrorIs(t, err, ErrMissingFields, "requires at least three answers")

	repo.On("CreateLeaderSubmission", mock.Anything, mock.MatchedBy(func(s *model.LeaderSubmission) bool {
		return s.Telegram == "neo" && s.Wallet == "wallet1" && len(s.Answers) == 3
	})).Return("sub-id-1", nil)

	id, err := service.SubmitLeaderApplication(context.Background(), &model.LeaderSubmission{
		Telegram: " Neo ",
		Wallet:   "wallet1",
		Answers:  []string{"one", "two", "three"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "sub-id-1", id)
	repo.AssertExpectations(t)
}
