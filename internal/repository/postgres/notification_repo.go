package postgres

import (
	"context"
	"database/sql"

	"blogpilot/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (customer_id, week_of, type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, n.CustomerID, n.WeekOf, n.Kind, n.Status).
		Scan(&n.ID, &n.CreatedAt)
}
