package domain

import (
	"context"
	"time"
)

// DraftStatus enumerates the lifecycle of a generated draft.
type DraftStatus string

const (
	DraftPending   DraftStatus = "pending"
	DraftSelected  DraftStatus = "selected"
	DraftRejected  DraftStatus = "rejected"
	DraftPublished DraftStatus = "published"
)

// Draft is one generated content candidate awaiting customer selection.
// WeekOf is the Monday-aligned cohort date (date only, no time component).
// swagger:model Draft
type Draft struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	WeekOf      time.Time   `json:"week_of"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	MainKeyword string      `json:"main_keyword"`
	Images      []string    `json:"images"`
	Status      DraftStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewDraft returns a pending Draft for the given customer and week cohort.
// ID and CreatedAt are set by the repository on create.
func NewDraft(customerID string, weekOf time.Time, title, content, mainKeyword string) *Draft {
	return &Draft{
		CustomerID:  customerID,
		WeekOf:      weekOf,
		Title:       title,
		Content:     content,
		MainKeyword: mainKeyword,
		Images:      []string{},
		Status:      DraftPending,
	}
}

// DraftService defines admin-facing draft operations.
type DraftService interface {
	// Publish marks a selected draft as published and appends its title to
	// the customer's used-topic history.
	Publish(ctx context.Context, draftID string) (*Draft, error)
}

// DraftRepository defines the interface for draft storage.
type DraftRepository interface {
	Create(ctx context.Context, draft *Draft) error
	GetByID(ctx context.Context, id string) (*Draft, error)
	// ExistsSince reports whether any draft (any status) exists for the
	// customer with week_of at or after the given date.
	ExistsSince(ctx context.Context, customerID string, since time.Time) (bool, error)
	// ListPendingSince returns pending drafts with week_of at or after the
	// given date, ordered by created_at then id ascending.
	ListPendingSince(ctx context.Context, customerID string, since time.Time) ([]*Draft, error)
	// MarkPublished transitions a selected draft to published. Returns
	// ErrDraftNotPending when the draft is not currently selected.
	MarkPublished(ctx context.Context, id string) (*Draft, error)
}
