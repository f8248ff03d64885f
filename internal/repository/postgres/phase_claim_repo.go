package postgres

import (
	"context"
	"database/sql"
	"time"

	"blogpilot/internal/domain"
)

type phaseClaimRepository struct {
	DB *sql.DB
}

// NewPhaseClaimRepository returns the uniqueness-constrained claim store that
// makes each phase at-most-once per (customer, week). The table carries a
// primary key on (customer_id, week_of, phase), so two concurrent invocations
// cannot both win the insert.
func NewPhaseClaimRepository(db *sql.DB) domain.PhaseClaimRepository {
	return &phaseClaimRepository{
		DB: db,
	}
}

func (r *phaseClaimRepository) Claim(ctx context.Context, customerID string, weekOf time.Time, phase domain.Phase) (bool, error) {
	query := `
		INSERT INTO phase_claims (customer_id, week_of, phase)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, week_of, phase) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, customerID, weekOf, phase)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *phaseClaimRepository) Release(ctx context.Context, customerID string, weekOf time.Time, phase domain.Phase) error {
	query := `DELETE FROM phase_claims WHERE customer_id = $1 AND week_of = $2 AND phase = $3`
	_, err := r.DB.ExecContext(ctx, query, customerID, weekOf, phase)
	return err
}
