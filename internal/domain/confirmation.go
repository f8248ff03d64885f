package domain

import (
	"context"
	"time"
)

// AutoConfirmMemo marks confirmations written by the auto-confirm phase.
const AutoConfirmMemo = "auto-confirmed"

// Confirmation is the authoritative record of a customer's choice for a week.
// The engine keeps at most one per (customer, week).
// swagger:model Confirmation
type Confirmation struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	DraftID     string    `json:"draft_id"`
	WeekOf      time.Time `json:"week_of"`
	Memo        string    `json:"memo,omitempty"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// ConfirmationRepository defines the interface for confirmation storage.
type ConfirmationRepository interface {
	// RecordSelection atomically marks the chosen draft selected, rejects
	// every other pending draft of the customer, and inserts the
	// confirmation row. Returns ErrDraftNotPending when the chosen draft is
	// not a pending draft of the customer; nothing is written in that case.
	RecordSelection(ctx context.Context, confirmation *Confirmation) error
	// ExistsSince reports whether a confirmation exists for the customer
	// with week_of at or after the given date.
	ExistsSince(ctx context.Context, customerID string, since time.Time) (bool, error)
}

// ConfirmPage is what the public confirmation link shows: the customer's
// pending drafts, or the fact that this week's choice was already made.
type ConfirmPage struct {
	CustomerName     string   `json:"customer_name"`
	AlreadyConfirmed bool     `json:"already_confirmed"`
	Drafts           []*Draft `json:"drafts"`
}

// ConfirmPageService backs the public confirmation link. The token is the
// sole credential; an unknown token is ErrNotFound with no further detail.
type ConfirmPageService interface {
	Load(ctx context.Context, token string, now time.Time) (*ConfirmPage, error)
	Select(ctx context.Context, token, draftID, memo string, now time.Time) (*Confirmation, error)
}

// ConfirmationRecorder finalizes one draft as the customer's weekly choice.
// Invoked from the public confirmation endpoint and from auto-confirm.
type ConfirmationRecorder interface {
	Confirm(ctx context.Context, customerID, draftID, memo string, now time.Time) (*Confirmation, error)
}
