package domain

import (
	"context"
	"time"
)

// UsedTopic is a historical record of a published title, consulted to bias
// generation away from repetition. Append-only.
type UsedTopic struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// UsedTopicRepository defines the interface for used-topic storage.
type UsedTopicRepository interface {
	Create(ctx context.Context, topic *UsedTopic) error
	// ListTitlesSince returns titles published at or after the given date.
	ListTitlesSince(ctx context.Context, customerID string, since time.Time) ([]string, error)
}
