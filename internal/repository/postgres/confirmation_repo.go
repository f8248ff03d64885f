package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blogpilot/internal/domain"
)

type confirmationRepository struct {
	DB *sql.DB
}

func NewConfirmationRepository(db *sql.DB) domain.ConfirmationRepository {
	return &confirmationRepository{
		DB: db,
	}
}

// RecordSelection runs the three writes of a confirmation in one transaction.
// The compare-and-set on the chosen draft runs first: zero rows affected means
// the draft is not a pending draft of this customer and nothing is written.
func (r *confirmationRepository) RecordSelection(ctx context.Context, c *domain.Confirmation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin confirmation tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE drafts SET status = 'selected' WHERE id = $1 AND customer_id = $2 AND status = 'pending'`,
		c.DraftID, c.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("select draft: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDraftNotPending
	}

	// Reject every remaining pending draft of the customer, current week or
	// older, so stale drafts never resurface.
	if _, err := tx.ExecContext(ctx,
		`UPDATE drafts SET status = 'rejected' WHERE customer_id = $1 AND status = 'pending' AND id <> $2`,
		c.CustomerID, c.DraftID,
	); err != nil {
		return fmt.Errorf("reject sibling drafts: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO confirmations (customer_id, draft_id, week_of, memo)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, confirmed_at`,
		c.CustomerID, c.DraftID, c.WeekOf, nullString(c.Memo),
	).Scan(&c.ID, &c.ConfirmedAt)
	if err != nil {
		return fmt.Errorf("insert confirmation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit confirmation tx: %w", err)
	}
	return nil
}

func (r *confirmationRepository) ExistsSince(ctx context.Context, customerID string, since time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM confirmations WHERE customer_id = $1 AND week_of >= $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, customerID, since).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
