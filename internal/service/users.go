package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/repository"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// RegisterProfile normalizes and upserts a profile submission. Wallet and
// telegram are required; telegram handles (own and referrer) are lower-cased
// and trimmed so referral attribution survives casing differences.
func (s *UserService) RegisterProfile(ctx context.Context, entry *model.UserEntry) (*model.UserEntry, error) {
	entry.Wallet = strings.TrimSpace(entry.Wallet)
	entry.Telegram = strings.ToLower(strings.TrimSpace(entry.Telegram))
	entry.ReferredBy = strings.ToLower(strings.TrimSpace(entry.ReferredBy))
	entry.Username = strings.TrimSpace(entry.Username)
	entry.Name = strings.TrimSpace(entry.Name)
	entry.Email = strings.TrimSpace(entry.Email)

	if entry.Wallet == "" || entry.Telegram == "" {
		return nil, ErrMissingFields
	}

	saved, err := s.repo.UpsertProfile(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return saved, nil
}

func (s *UserService) ListEntries(ctx context.Context) ([]*model.UserEntry, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *UserService) SetEngagement(ctx context.Context, wallet string, value float64) error {
	if wallet == "" || value < 0 {
		return ErrMissingFields
	}

	err := s.repo.SetEngagement(ctx, wallet, value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to set engagement: %w", err)
	}
	return nil
}

func (s *UserService) SubmitLeaderApplication(ctx context.Context, submission *model.LeaderSubmission) (string, error) {
	submission.Telegram = strings.ToLower(strings.TrimSpace(submission.Telegram))
	submission.Wallet = strings.TrimSpace(submission.Wallet)

	if submission.Telegram == "" || submission.Wallet == "" || len(submission.Answers) < 3 {
		return "", ErrMissingFields
	}

	id, err := s.repo.CreateLeaderSubmission(ctx, submission)
	if err != nil {
		return "", fmt.Errorf("failed to create leader submission: %w", err)
	}

	return id, nil
}

func (s *UserService) ListLeaderSubmissions(ctx context.Context) ([]*model.LeaderSubmission, error) {
	submissions, err := s.repo.GetLeaderSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leader submissions: %w", err)
	}
	return submissions, nil
}
