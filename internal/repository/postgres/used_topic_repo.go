package postgres

import (
	"context"
	"database/sql"
	"time"

	"blogpilot/internal/domain"
)

type usedTopicRepository struct {
	DB *sql.DB
}

func NewUsedTopicRepository(db *sql.DB) domain.UsedTopicRepository {
	return &usedTopicRepository{
		DB: db,
	}
}

func (r *usedTopicRepository) Create(ctx context.Context, t *domain.UsedTopic) error {
	query := `
		INSERT INTO used_topics (customer_id, title, summary, published_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, t.CustomerID, t.Title, nullString(t.Summary), t.PublishedAt).
		Scan(&t.ID)
}

func (r *usedTopicRepository) ListTitlesSince(ctx context.Context, customerID string, since time.Time) ([]string, error) {
	query := `
		SELECT title FROM used_topics
		WHERE customer_id = $1 AND published_at >= $2
		ORDER BY published_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}
