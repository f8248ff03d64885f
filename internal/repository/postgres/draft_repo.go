package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"blogpilot/internal/domain"
)

type draftRepository struct {
	DB *sql.DB
}

func NewDraftRepository(db *sql.DB) domain.DraftRepository {
	return &draftRepository{
		DB: db,
	}
}

func (r *draftRepository) Create(ctx context.Context, d *domain.Draft) error {
	query := `
		INSERT INTO drafts (customer_id, week_of, title, content, main_keyword, images, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		d.CustomerID, d.WeekOf, d.Title, d.Content, d.MainKeyword, pq.Array(d.Images), d.Status,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *draftRepository) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	query := `
		SELECT id, customer_id, week_of, title, content, main_keyword, images, status, created_at
		FROM drafts
		WHERE id = $1
	`
	d, err := scanDraft(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *draftRepository) ExistsSince(ctx context.Context, customerID string, since time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM drafts WHERE customer_id = $1 AND week_of >= $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, customerID, since).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *draftRepository) ListPendingSince(ctx context.Context, customerID string, since time.Time) ([]*domain.Draft, error) {
	query := `
		SELECT id, customer_id, week_of, title, content, main_keyword, images, status, created_at
		FROM drafts
		WHERE customer_id = $1 AND status = 'pending' AND week_of >= $2
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := make([]*domain.Draft, 0)
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

func (r *draftRepository) MarkPublished(ctx context.Context, id string) (*domain.Draft, error) {
	query := `
		UPDATE drafts SET status = 'published'
		WHERE id = $1 AND status = 'selected'
		RETURNING id, customer_id, week_of, title, content, main_keyword, images, status, created_at
	`
	d, err := scanDraft(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDraftNotPending
		}
		return nil, err
	}
	return d, nil
}

func scanDraft(row rowScanner) (*domain.Draft, error) {
	d := &domain.Draft{}
	err := row.Scan(&d.ID, &d.CustomerID, &d.WeekOf, &d.Title, &d.Content, &d.MainKeyword,
		pq.Array(&d.Images), &d.Status, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	if d.Images == nil {
		d.Images = []string{}
	}
	return d, nil
}
