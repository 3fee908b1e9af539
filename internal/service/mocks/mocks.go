package mocks

import (
	"context"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/solana"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertProfile(ctx context.Context, entry *model.UserEntry) (*model.UserEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserEntry), args.Error(1)
}

func (m *MockUserRepository) GetByWallet(ctx context.Context, wallet string) (*model.UserEntry, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserEntry), args.Error(1)
}

func (m *MockUserRepository) CountReferrals(ctx context.Context, telegram string) (int, error) {
	args := m.Called(ctx, telegram)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetVerifiedUsers(ctx context.Context) ([]*model.UserEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserEntry), args.Error(1)
}

func (m *MockUserRepository) ListEntries(ctx context.Context) ([]*model.UserEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserEntry), args.Error(1)
}

func (m *MockUserRepository) SaveVerification(ctx context.Context, wallet string, stats *model.VerifiedStats) error {
	args := m.Called(ctx, wallet, stats)
	return args.Error(0)
}

func (m *MockUserRepository) SetEngagement(ctx context.Context, wallet string, value float64) error {
	args := m.Called(ctx, wallet, value)
	return args.Error(0)
}

func (m *MockUserRepository) CreateLeaderSubmission(ctx context.Context, submission *model.LeaderSubmission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetLeaderSubmissions(ctx context.Context) ([]*model.LeaderSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LeaderSubmission), args.Error(1)
}

type MockPresaleRepository struct {
	mock.Mock
}

func (m *MockPresaleRepository) CreatePresaleEntry(ctx context.Context, entry *model.PresaleEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPresaleRepository) ListPresaleEntries(ctx context.Context, wallet string) ([]*model.PresaleEntry, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PresaleEntry), args.Error(1)
}

type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) AddressTransactions(ctx context.Context, address string, limit int) ([]solana.EnhancedTransaction, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]solana.EnhancedTransaction), args.Error(1)
}

func (m *MockChainClient) TokenBalance(ctx context.Context, wallet, mint string) (float64, error) {
	args := m.Called(ctx, wallet, mint)
	return args.Get(0).(float64), args.Error(1)
}

type MockRefreshNotifier struct {
	mock.Mock
}

func (m *MockRefreshNotifier) LeaderboardChanged() {
	m.Called()
}
