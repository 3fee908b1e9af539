package service

import (
	"context"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/solana"

	"github.com/pkg/errors"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMissingFields       = errors.New("missing required fields")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

type Service struct {
	*UserService
	*PresaleService
	*LeaderboardService
	*VerificationService
}

func NewService(user *UserService, presale *PresaleService, leaderboard *LeaderboardService, verification *VerificationService) *Service {
	return &Service{
		UserService:         user,
		PresaleService:      presale,
		LeaderboardService:  leaderboard,
		VerificationService: verification,
	}
}

type UserServiceI interface {
	RegisterProfile(ctx context.Context, entry *model.UserEntry) (*model.UserEntry, error)
	ListEntries(ctx context.Context) ([]*model.UserEntry, error)
	SetEngagement(ctx context.Context, wallet string, value float64) error
	SubmitLeaderApplication(ctx context.Context, submission *model.LeaderSubmission) (string, error)
	ListLeaderSubmissions(ctx context.Context) ([]*model.LeaderSubmission, error)
}

type PresaleServiceI interface {
	RecordEntry(ctx context.Context, entry *model.PresaleEntry) error
	ListPresaleEntries(ctx context.Context, wallet string) ([]*model.PresaleEntry, error)
}

type LeaderboardServiceI interface {
	Leaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error)
}

type VerificationServiceI interface {
	Verify(ctx context.Context, wallet string) (*model.VerificationResult, error)
	Status(ctx context.Context, wallet string) (*model.VerificationResult, error)
}

type UserRepository interface {
	UpsertProfile(ctx context.Context, entry *model.UserEntry) (*model.UserEntry, error)
	GetByWallet(ctx context.Context, wallet string) (*model.UserEntry, error)
	CountReferrals(ctx context.Context, telegram string) (int, error)
	GetVerifiedUsers(ctx context.Context) ([]*model.UserEntry, error)
	ListEntries(ctx context.Context) ([]*model.UserEntry, error)
	SaveVerification(ctx context.Context, wallet string, stats *model.VerifiedStats) error
	SetEngagement(ctx context.Context, wallet string, value float64) error
	CreateLeaderSubmission(ctx context.Context, submission *model.LeaderSubmission) (string, error)
	GetLeaderSubmissions(ctx context.Context) ([]*model.LeaderSubmission, error)
}

type PresaleRepository interface {
	CreatePresaleEntry(ctx context.Context, entry *model.PresaleEntry) error
	ListPresaleEntries(ctx context.Context, wallet string) ([]*model.PresaleEntry, error)
}

// ChainClient is the payment verifier and token balance oracle.
type ChainClient interface {
	AddressTransactions(ctx context.Context, address string, limit int) ([]solana.EnhancedTransaction, error)
	TokenBalance(ctx context.Context, wallet, mint string) (float64, error)
}

// RefreshNotifier is notified when derived leaderboard data changed.
type RefreshNotifier interface {
	LeaderboardChanged()
}
