package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/members/pkg/logrecorder"
)

// LogRepository implements logrecorder.Repository on the logs table.
type LogRepository struct {
	pool *pgxpool.Pool
}

var _ logrecorder.Repository = (*LogRepository)(nil)

func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

func (r *LogRepository) Insert(ctx context.Context, e logrecorder.Entry) (logrecorder.Entry, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO logs (level, message, context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, string(e.Level), e.Message, string(e.Context), e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	if err != nil {
		return logrecorder.Entry{}, err
	}
	return e, nil
}

func (r *LogRepository) List(ctx context.Context, f logrecorder.Filter) ([]logrecorder.Entry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if f.Level != "" {
		rows, err = r.pool.Query(ctx, `
			SELECT id, level, message, context, created_at, updated_at
			FROM logs WHERE level = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`, string(f.Level), f.Limit, f.Offset)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT id, level, message, context, created_at, updated_at
			FROM logs
			ORDER BY created_at DESC, id DESC
			LIMIT $1 OFFSET $2
		`, f.Limit, f.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []logrecorder.Entry{}
	for rows.Next() {
		var (
			e                    logrecorder.Entry
			level, raw           string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&e.ID, &level, &e.Message, &raw, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.Level = logrecorder.Level(level)
		e.Context = json.RawMessage(raw)
		e.CreatedAt = createdAt.UTC()
		e.UpdatedAt = updatedAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
