package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/TOPG-DEV/burntheworld/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func (r *Repository) CreateLeaderSubmission(ctx context.Context, submission *model.LeaderSubmission) (string, error) {
	answers, err := json.Marshal(submission.Answers)
	if err != nil {
		return "", fmt.Errorf("failed to marshal answers: %w", err)
	}

	id := uuid.New().String()

	query, args, err := squirrel.
		Insert("leader_submissions").
		SetMap(map[string]interface{}{
			"id":         id,
			"telegram":   submission.Telegram,
			"wallet":     submission.Wallet,
			"answers":    answers,
			"created_at": time.Now().UTC(),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build leader submission insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to insert leader submission: %w", err)
	}

	return id, nil
}

func (r *Repository) GetLeaderSubmissions(ctx context.Context) ([]*model.LeaderSubmission, error) {
	query, args, err := squirrel.
		Select("id", "telegram", "wallet", "answers", "created_at").
		From("leader_submissions").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID        string    `db:"id"`
		Telegram  string    `db:"telegram"`
		Wallet    string    `db:"wallet"`
		Answers   []byte    `db:"answers"`
		CreatedAt time.Time `db:"created_at"`
	}
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	submissions := make([]*model.LeaderSubmission, len(rows))
	for i, row := range rows {
		var answers []string
		if err := json.Unmarshal(row.Answers, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers for %s: %w", row.ID, err)
		}
		submissions[i] = &model.LeaderSubmission{
			ID:        row.ID,
			Telegram:  row.Telegram,
			Wallet:    row.Wallet,
			Answers:   answers,
			CreatedAt: row.CreatedAt,
		}
	}

	return submissions, nil
}
