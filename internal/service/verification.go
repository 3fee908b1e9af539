package service

import (
	"context"
	"fmt"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/ranking"
	"github.com/TOPG-DEV/burntheworld/internal/repository"
	"github.com/TOPG-DEV/burntheworld/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	reasonNotRegistered = "You haven't submitted your info yet. Fill the form and unplug first."
	reasonNoPayment     = "Your wallet is known, but no qualifying payment to the treasury wallet was found."
	reasonUpstream      = "Error reaching the blockchain. Try again shortly."
	messageVerified     = "You're verified — Welcome UNPLUGGED."
)

type VerificationConfig struct {
	TreasuryWallet  string
	TokenMint       string
	SolPerRound     float64
	TxLookbackLimit int
}

type VerificationService struct {
	repo     UserRepository
	chain    ChainClient
	cfg      VerificationConfig
	profile  ranking.ScoringProfile
	notifier RefreshNotifier
}

func NewVerificationService(repo UserRepository, chain ChainClient, cfg VerificationConfig, notifier RefreshNotifier) *VerificationService {
	if cfg.TxLookbackLimit <= 0 {
		cfg.TxLookbackLimit = 100
	}
	if cfg.SolPerRound <= 0 {
		cfg.SolPerRound = 0.5
	}

	return &VerificationService{
		repo:     repo,
		chain:    chain,
		cfg:      cfg,
		profile:  ranking.VerificationProfile,
		notifier: notifier,
	}
}

// Verify runs the dashboard gate for a wallet: confirm a qualifying payment
// to the treasury, refresh the four metrics, recompute rank and persist the
// result. Re-running with unchanged upstream data writes the same fields.
func (s *VerificationService) Verify(ctx context.Context, wallet string) (*model.VerificationResult, error) {
	log := logger.Logger()

	user, err := s.repo.GetByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.VerificationResult{
				Verified: false,
				Reason:   reasonNotRegistered,
			}, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	txs, err := s.chain.AddressTransactions(ctx, s.cfg.TreasuryWallet, s.cfg.TxLookbackLimit)
	if err != nil {
		log.Error("failed to fetch treasury transactions", zap.Error(err))
		return &model.VerificationResult{
			Verified: false,
			Reason:   reasonUpstream,
		}, errors.Wrap(ErrUpstreamUnavailable, err.Error())
	}

	rounds := 0
	for _, tx := range txs {
		for _, transfer := range tx.NativeTransfers {
			if transfer.ToUserAccount == s.cfg.TreasuryWallet && transfer.FromUserAccount == wallet {
				rounds++
			}
		}
	}

	if rounds == 0 {
		return &model.VerificationResult{
			Verified: false,
			Reason:   reasonNoPayment,
		}, nil
	}

	topgBalance, err := s.chain.TokenBalance(ctx, wallet, s.cfg.TokenMint)
	if err != nil {
		log.Error("failed to fetch token balance", zap.Error(err), zap.String("wallet", wallet))
		return &model.VerificationResult{
			Verified: false,
			Reason:   reasonUpstream,
		}, errors.Wrap(ErrUpstreamUnavailable, err.Error())
	}

	referrals, err := s.repo.CountReferrals(ctx, user.Telegram)
	if err != nil {
		return nil, fmt.Errorf("failed to count referrals: %w", err)
	}

	totalPaid := float64(rounds) * s.cfg.SolPerRound
	engagement := user.TelegramEngagement

	score := s.profile.Score(model.UserMetrics{
		TopgBalance:        topgBalance,
		TotalPresaleAmount: totalPaid,
		ReferralCount:      referrals,
		TelegramEngagement: engagement,
	})
	rankTitle := ranking.TitleFor(score)

	err = s.repo.SaveVerification(ctx, wallet, &model.VerifiedStats{
		Rank:               rankTitle,
		TopgBalance:        topgBalance,
		UnpluggedRounds:    rounds,
		ReferralCount:      referrals,
		TelegramEngagement: engagement,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save verification: %w", err)
	}

	if s.notifier != nil {
		s.notifier.LeaderboardChanged()
	}

	log.Info("wallet verified",
		zap.String("wallet", wallet),
		zap.String("rank", rankTitle),
		zap.Int("rounds", rounds))

	return &model.VerificationResult{
		Verified:   true,
		Rank:       rankTitle,
		Wallet:     wallet,
		Telegram:   user.Telegram,
		Topg:       topgBalance,
		Rounds:     rounds,
		Referrals:  referrals,
		TotalPaid:  totalPaid,
		Engagement: engagement,
		Message:    messageVerified,
	}, nil
}

// Status is the lightweight check: stored verified flag and rank only, no
// chain lookups.
func (s *VerificationService) Status(ctx context.Context, wallet string) (*model.VerificationResult, error) {
	user, err := s.repo.GetByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.VerificationResult{Verified: false}, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &model.VerificationResult{
		Verified: user.Verified,
		Rank:     user.Rank,
		Wallet:   user.Wallet,
	}, nil
}
