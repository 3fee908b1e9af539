package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/TOPG-DEV/burntheworld/internal/model"
)

type PresaleService struct {
	repo PresaleRepository
}

func NewPresaleService(repo PresaleRepository) *PresaleService {
	return &PresaleService{
		repo: repo,
	}
}

// RecordEntry stores a confirmed presale payment. Wallet, amount and tx
// signature are required.
func (s *PresaleService) RecordEntry(ctx context.Context, entry *model.PresaleEntry) error {
	entry.Wallet = strings.TrimSpace(entry.Wallet)
	entry.Tx = strings.TrimSpace(entry.Tx)
	if entry.Tier == "" {
		entry.Tier = "default"
	}

	if entry.Wallet == "" || entry.Tx == "" || entry.Amount <= 0 {
		return ErrMissingFields
	}

	err := s.repo.CreatePresaleEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to record presale entry: %w", err)
	}

	return nil
}

// ListPresaleEntries returns recorded payments, optionally filtered by
// wallet.
func (s *PresaleService) ListPresaleEntries(ctx context.Context, wallet string) ([]*model.PresaleEntry, error) {
	entries, err := s.repo.ListPresaleEntries(ctx, strings.TrimSpace(wallet))
	if err != nil {
		return nil, fmt.Errorf("failed to list presale entries: %w", err)
	}
	return entries, nil
}
