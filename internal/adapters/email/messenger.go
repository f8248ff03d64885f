package email

import (
	"context"
	"fmt"

	"blogpilot/internal/domain"
)

type messenger struct {
	mailer   domain.Mailer
	renderer domain.MessageRenderer
}

// NewMessenger wraps a Mailer as a confirmation-link Messenger. It is the
// fallback channel for customers reached by email instead of KakaoTalk.
func NewMessenger(mailer domain.Mailer, renderer domain.MessageRenderer) domain.Messenger {
	return &messenger{mailer: mailer, renderer: renderer}
}

func (m *messenger) Send(ctx context.Context, msg *domain.ConfirmMessage) error {
	if msg.Email == "" {
		return fmt.Errorf("customer %s has no email address", msg.CustomerName)
	}
	templateName := "confirm_initial"
	if msg.Kind == domain.NotificationReminder {
		templateName = "confirm_reminder"
	}
	subject, htmlBody, textBody, err := m.renderer.Render(templateName, msg)
	if err != nil {
		return fmt.Errorf("render %s message: %w", templateName, err)
	}
	if err := m.mailer.Send(msg.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
