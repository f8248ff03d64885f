package domain

import (
	"context"
	"time"
)

// NotificationKind distinguishes the first weekly send from the reminder.
type NotificationKind string

const (
	NotificationInitial  NotificationKind = "initial"
	NotificationReminder NotificationKind = "reminder"
)

// NotificationStatus records the outcome of a delivery attempt.
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification is an append-only audit row for one outbound message attempt.
// It exists for observability; control flow gates on drafts/confirmations.
type Notification struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	WeekOf     time.Time          `json:"week_of"`
	Kind       NotificationKind   `json:"type"`
	Status     NotificationStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NotificationRepository defines the interface for notification audit storage.
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
}

// ConfirmMessage is the payload handed to a Messenger.
type ConfirmMessage struct {
	CustomerName string
	Phone        string
	Email        string
	ConfirmLink  string
	Kind         NotificationKind
}

// Messenger delivers the confirmation link to a customer. Implementations
// handle transport-level signing and phone normalization themselves.
type Messenger interface {
	Send(ctx context.Context, msg *ConfirmMessage) error
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// MessageRenderer renders outbound message content from a named template.
type MessageRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}
