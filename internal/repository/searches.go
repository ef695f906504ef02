package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/pixelbot/internal/domain"
)

// SearchLog records delivered media items for admin statistics.
type SearchLog struct {
	db *pgxpool.Pool
}

func NewSearchLog(db *pgxpool.Pool) *SearchLog {
	return &SearchLog{db: db}
}

func (r *SearchLog) Insert(ctx context.Context, e domain.SearchEvent) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO search_events (chat_id, query, media_kind, orientation, media_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ChatID, e.Query, string(e.Kind), string(e.Orientation), e.MediaID,
	)
	if err != nil {
		return fmt.Errorf("insert search event: %w", err)
	}
	return nil
}

func (r *SearchLog) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM search_events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count search events: %w", err)
	}
	return count, nil
}

func (r *SearchLog) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM search_events WHERE created_at >= $1`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count search events since: %w", err)
	}
	return count, nil
}

func (r *SearchLog) CountDistinctChats(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT chat_id) FROM search_events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count distinct chats: %w", err)
	}
	return count, nil
}

func (r *SearchLog) TopQueries(ctx context.Context, limit int) ([]domain.QueryCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT query, COUNT(*) AS cnt FROM search_events
		 GROUP BY query ORDER BY cnt DESC, query LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top queries: %w", err)
	}
	defer rows.Close()

	var result []domain.QueryCount
	for rows.Next() {
		var qc domain.QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count); err != nil {
			return nil, fmt.Errorf("scan top query: %w", err)
		}
		result = append(result, qc)
	}
	return result, rows.Err()
}
