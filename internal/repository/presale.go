package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TOPG-DEV/burntheworld/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// CreatePresaleEntry records a presale payment and bumps the wallet's running
// presale total in the same transaction. The tx signature is unique; a replay
// of the same confirmation returns ErrDuplicateTx without touching the total.
func (r *Repository) CreatePresaleEntry(ctx context.Context, entry *model.PresaleEntry) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Insert("presale_entries").
			SetMap(map[string]interface{}{
				"wallet":     entry.Wallet,
				"amount":     entry.Amount,
				"tx":         entry.Tx,
				"tier":       entry.Tier,
				"created_at": time.Now().UTC(),
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build presale insert query: %w", err)
		}

		_, err = tx.ExecContext(ctx, query, args...)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return ErrDuplicateTx
			}
			return fmt.Errorf("failed to insert presale entry: %w", err)
		}

		updateQuery, updateArgs, err := squirrel.
			Update("entries").
			Set("total_presale_amount", squirrel.Expr("total_presale_amount + ?", entry.Amount)).
			Set("updated_at", time.Now().UTC()).
			Where(squirrel.Eq{"wallet": entry.Wallet}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build presale total update query: %w", err)
		}

		// A wallet may pay before registering its profile; the total is
		// recomputed from chain data at verification time anyway.
		_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return fmt.Errorf("failed to update presale total: %w", err)
		}

		return nil
	})
}

func (r *Repository) ListPresaleEntries(ctx context.Context, wallet string) ([]*model.PresaleEntry, error) {
	builder := squirrel.
		Select("id", "wallet", "amount", "tx", "tier", "created_at").
		From("presale_entries").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if wallet != "" {
		builder = builder.Where(squirrel.Eq{"wallet": wallet})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID        int64     `db:"id"`
		Wallet    string    `db:"wallet"`
		Amount    float64   `db:"amount"`
		Tx        string    `db:"tx"`
		Tier      string    `db:"tier"`
		CreatedAt time.Time `db:"created_at"`
	}
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.PresaleEntry, len(rows))
	for i, row := range rows {
		entries[i] = &model.PresaleEntry{
			ID:        row.ID,
			Wallet:    row.Wallet,
			Amount:    row.Amount,
			Tx:        row.Tx,
			Tier:      row.Tier,
			CreatedAt: row.CreatedAt,
		}
	}

	return entries, nil
}
