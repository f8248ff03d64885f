package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blogpilot/internal/domain"
)

type notificationPhase struct {
	kind       domain.NotificationKind
	draftRepo  domain.DraftRepository
	confRepo   domain.ConfirmationRepository
	notifRepo  domain.NotificationRepository
	claimRepo  domain.PhaseClaimRepository
	messenger  domain.Messenger
	serviceURL string
	logger     *slog.Logger
}

// NewNotificationPhase creates the confirmation-link send phase. kind selects
// the initial Monday send or the Wednesday reminder; the reminder additionally
// skips customers that already confirmed this week.
func NewNotificationPhase(
	kind domain.NotificationKind,
	draftRepo domain.DraftRepository,
	confRepo domain.ConfirmationRepository,
	notifRepo domain.NotificationRepository,
	claimRepo domain.PhaseClaimRepository,
	messenger domain.Messenger,
	serviceURL string,
	logger *slog.Logger,
) domain.PhaseRunner {
	return &notificationPhase{
		kind:       kind,
		draftRepo:  draftRepo,
		confRepo:   confRepo,
		notifRepo:  notifRepo,
		claimRepo:  claimRepo,
		messenger:  messenger,
		serviceURL: strings.TrimRight(serviceURL, "/"),
		logger:     logger,
	}
}

func (p *notificationPhase) Phase() domain.Phase {
	if p.kind == domain.NotificationReminder {
		return domain.PhaseNotifyReminder
	}
	return domain.PhaseNotifyInitial
}

func (p *notificationPhase) ProcessCustomer(ctx context.Context, customer *domain.Customer, now time.Time) domain.Outcome {
	weekStart := domain.WeekStart(now)
	today := domain.DateOf(now)

	pending, err := p.draftRepo.ListPendingSince(ctx, customer.ID, weekStart)
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("list pending drafts: %w", err))
	}
	if len(pending) == 0 {
		return domain.SkippedOutcome(customer.Name, "no pending drafts")
	}

	if p.kind == domain.NotificationReminder {
		confirmed, err := p.confRepo.ExistsSince(ctx, customer.ID, weekStart)
		if err != nil {
			return domain.FailedOutcome(customer.Name, fmt.Errorf("check confirmation: %w", err))
		}
		if confirmed {
			// No audit row: nothing was attempted.
			return domain.SkippedOutcome(customer.Name, "already confirmed")
		}
	}

	claimed, err := p.claimRepo.Claim(ctx, customer.ID, weekStart, p.Phase())
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("claim notification: %w", err))
	}
	if !claimed {
		return domain.SkippedOutcome(customer.Name, "already notified this week")
	}

	msg := &domain.ConfirmMessage{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Email:        customer.Email,
		ConfirmLink:  fmt.Sprintf("%s/confirm/%s", p.serviceURL, customer.ConfirmToken),
		Kind:         p.kind,
	}
	sendErr := p.messenger.Send(ctx, msg)

	// The audit row is written regardless of delivery outcome so failed sends
	// stay distinguishable from "never attempted".
	status := domain.NotificationSent
	if sendErr != nil {
		status = domain.NotificationFailed
	}
	audit := &domain.Notification{
		CustomerID: customer.ID,
		WeekOf:     today,
		Kind:       p.kind,
		Status:     status,
	}
	if err := p.notifRepo.Create(ctx, audit); err != nil {
		p.logger.Error("notification audit write failed", "customer", customer.Name, "err", err)
		if sendErr == nil {
			return domain.FailedOutcome(customer.Name, fmt.Errorf("record notification: %w", err))
		}
	}

	if sendErr != nil {
		if err := p.claimRepo.Release(ctx, customer.ID, weekStart, p.Phase()); err != nil {
			p.logger.Warn("release notification claim failed", "customer_id", customer.ID, "err", err)
		}
		return domain.FailedOutcome(customer.Name, fmt.Errorf("send %s notification: %w", p.kind, sendErr))
	}

	p.logger.Info("notification sent", "customer", customer.Name, "kind", p.kind)
	return domain.Outcome{Customer: customer.Name, Status: domain.OutcomeSent}
}
