package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TOPG-DEV/burntheworld/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type userEntry struct {
	Wallet             string    `db:"wallet"`
	Telegram           string    `db:"telegram"`
	Username           string    `db:"username"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	ReferredBy         string    `db:"referred_by"`
	TopgBalance        float64   `db:"topg_balance"`
	UnpluggedRounds    int       `db:"unplugged_rounds"`
	TotalPresaleAmount float64   `db:"total_presale_amount"`
	ReferralCount      int       `db:"referral_count"`
	TelegramEngagement float64   `db:"telegram_engagement"`
	Rank               string    `db:"rank"`
	Verified           bool      `db:"verified"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (u *userEntry) toModel() *model.UserEntry {
	return &model.UserEntry{
		Wallet:             u.Wallet,
		Telegram:           u.Telegram,
		Username:           u.Username,
		Name:               u.Name,
		Email:              u.Email,
		ReferredBy:         u.ReferredBy,
		TopgBalance:        u.TopgBalance,
		UnpluggedRounds:    u.UnpluggedRounds,
		TotalPresaleAmount: u.TotalPresaleAmount,
		ReferralCount:      u.ReferralCount,
		TelegramEngagement: u.TelegramEngagement,
		Rank:               u.Rank,
		Verified:           u.Verified,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// profileUpdates builds the merge map for an existing entry. Incoming empty
// fields never overwrite stored values. When the row was matched by telegram
// fallback its wallet column is rewritten to the submitted wallet, so the
// wallet stays the identity going forward.
func profileUpdates(existing, incoming *model.UserEntry, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"updated_at": now,
	}
	if incoming.Wallet != "" && incoming.Wallet != existing.Wallet {
		updates["wallet"] = incoming.Wallet
	}
	if incoming.Telegram != "" {
		updates["telegram"] = incoming.Telegram
	}
	if incoming.Username != "" {
		updates["username"] = incoming.Username
	}
	if incoming.Name != "" {
		updates["name"] = incoming.Name
	}
	if incoming.Email != "" {
		updates["email"] = incoming.Email
	}
	return updates
}

// shouldCreditReferrer reports whether a first-time insert credits the named
// referrer. Self-referrals never count, and merges into an existing row never
// reach this check, so a re-registration cannot double-count.
func shouldCreditReferrer(entry *model.UserEntry) bool {
	return entry.ReferredBy != "" && entry.ReferredBy != entry.Telegram
}

// UpsertProfile inserts a new entry or merges the submitted fields into an
// existing one. The row is matched by wallet first, then by telegram handle
// for users resubmitting with a new wallet. Referral attribution happens only
// on first insert and inside the same transaction.
func (r *Repository) UpsertProfile(ctx context.Context, entry *model.UserEntry) (*model.UserEntry, error) {
	var saved *model.UserEntry

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		now := time.Now().UTC()

		existing, err := r.getByWalletWithTx(ctx, tx, entry.Wallet)
		if errors.Is(err, ErrNotFound) && entry.Telegram != "" {
			existing, err = r.getByTelegramWithTx(ctx, tx, entry.Telegram)
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		if existing != nil {
			query, args, err := squirrel.
				Update("entries").
				SetMap(profileUpdates(existing, entry, now)).
				Where(squirrel.Eq{"wallet": existing.Wallet}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build entry update query: %w", err)
			}

			_, err = tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to update entry: %w", err)
			}
		} else {
			query, args, err := squirrel.
				Insert("entries").
				SetMap(map[string]interface{}{
					"wallet":      entry.Wallet,
					"telegram":    entry.Telegram,
					"username":    entry.Username,
					"name":        entry.Name,
					"email":       entry.Email,
					"referred_by": entry.ReferredBy,
					"created_at":  now,
					"updated_at":  now,
				}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build entry insert query: %w", err)
			}

			_, err = tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to insert entry: %w", err)
			}

			if shouldCreditReferrer(entry) {
				updateQuery, updateArgs, err := squirrel.
					Update("entries").
					Set("referral_count", squirrel.Expr("referral_count + 1")).
					Where(squirrel.Eq{"telegram": entry.ReferredBy}).
					PlaceholderFormat(squirrel.Dollar).
					ToSql()
				if err != nil {
					return fmt.Errorf("failed to build referrer update query: %w", err)
				}

				_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
				if err != nil {
					return fmt.Errorf("failed to update referrer: %w", err)
				}
			}
		}

		saved, err = r.getByWalletWithTx(ctx, tx, entry.Wallet)
		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (r *Repository) GetByWallet(ctx context.Context, wallet string) (*model.UserEntry, error) {
	var entry userEntry
	query, args, err := squirrel.
		Select("*").
		From("entries").
		Where(squirrel.Eq{"wallet": wallet}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &entry, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return entry.toModel(), nil
}

func (r *Repository) getByWalletWithTx(ctx context.Context, tx *sqlx.Tx, wallet string) (*model.UserEntry, error) {
	var entry userEntry
	query, args, err := squirrel.
		Select("*").
		From("entries").
		Where(squirrel.Eq{"wallet": wallet}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = tx.GetContext(ctx, &entry, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return entry.toModel(), nil
}

func (r *Repository) getByTelegramWithTx(ctx context.Context, tx *sqlx.Tx, telegram string) (*model.UserEntry, error) {
	var entry userEntry
	query, args, err := squirrel.
		Select("*").
		From("entries").
		Where(squirrel.Eq{"telegram": telegram}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = tx.GetContext(ctx, &entry, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return entry.toModel(), nil
}

// CountReferrals counts entries naming the given telegram handle as their
// referrer.
func (r *Repository) CountReferrals(ctx context.Context, telegram string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("entries").
		Where(squirrel.Eq{"referred_by": telegram}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) GetVerifiedUsers(ctx context.Context) ([]*model.UserEntry, error) {
	query, args, err := squirrel.
		Select("*").
		From("entries").
		Where(squirrel.Eq{"verified": true}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var entries []userEntry
	err = r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}

	users := make([]*model.UserEntry, len(entries))
	for i := range entries {
		users[i] = entries[i].toModel()
	}

	return users, nil
}

func (r *Repository) ListEntries(ctx context.Context) ([]*model.UserEntry, error) {
	query, args, err := squirrel.
		Select("*").
		From("entries").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var entries []userEntry
	err = r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}

	users := make([]*model.UserEntry, len(entries))
	for i := range entries {
		users[i] = entries[i].toModel()
	}

	return users, nil
}

// SaveVerification upserts the derived fields computed by a verification
// pass. Verified is only ever set true here; the write is idempotent for
// unchanged inputs.
func (r *Repository) SaveVerification(ctx context.Context, wallet string, stats *model.VerifiedStats) error {
	now := time.Now().UTC()

	query, args, err := squirrel.
		Insert("entries").
		SetMap(map[string]interface{}{
			"wallet":              wallet,
			"rank":                stats.Rank,
			"topg_balance":        stats.TopgBalance,
			"unplugged_rounds":    stats.UnpluggedRounds,
			"referral_count":      stats.ReferralCount,
			"telegram_engagement": stats.TelegramEngagement,
			"verified":            true,
			"created_at":          now,
			"updated_at":          now,
		}).
		Suffix(`ON CONFLICT (wallet) DO UPDATE SET
			rank = EXCLUDED.rank,
			topg_balance = EXCLUDED.topg_balance,
			unplugged_rounds = EXCLUDED.unplugged_rounds,
			referral_count = EXCLUDED.referral_count,
			telegram_engagement = EXCLUDED.telegram_engagement,
			verified = TRUE,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build verification upsert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}

	return nil
}

// SetEngagement stores the telegram engagement metric for a wallet.
func (r *Repository) SetEngagement(ctx context.Context, wallet string, value float64) error {
	query, args, err := squirrel.
		Update("entries").
		Set("telegram_engagement", value).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"wallet": wallet}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
