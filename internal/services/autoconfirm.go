package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogpilot/internal/domain"
)

type autoConfirmPhase struct {
	draftRepo domain.DraftRepository
	confRepo  domain.ConfirmationRepository
	claimRepo domain.PhaseClaimRepository
	recorder  domain.ConfirmationRecorder
	logger    *slog.Logger
}

// NewAutoConfirmPhase creates the Thursday fallback that force-selects the
// earliest-created pending draft for customers that never responded.
func NewAutoConfirmPhase(
	draftRepo domain.DraftRepository,
	confRepo domain.ConfirmationRepository,
	claimRepo domain.PhaseClaimRepository,
	recorder domain.ConfirmationRecorder,
	logger *slog.Logger,
) domain.PhaseRunner {
	return &autoConfirmPhase{
		draftRepo: draftRepo,
		confRepo:  confRepo,
		claimRepo: claimRepo,
		recorder:  recorder,
		logger:    logger,
	}
}

func (p *autoConfirmPhase) Phase() domain.Phase {
	return domain.PhaseAutoConfirm
}

func (p *autoConfirmPhase) ProcessCustomer(ctx context.Context, customer *domain.Customer, now time.Time) domain.Outcome {
	weekStart := domain.WeekStart(now)

	pending, err := p.draftRepo.ListPendingSince(ctx, customer.ID, weekStart)
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("list pending drafts: %w", err))
	}
	if len(pending) == 0 {
		return domain.SkippedOutcome(customer.Name, "no pending drafts")
	}

	confirmed, err := p.confRepo.ExistsSince(ctx, customer.ID, weekStart)
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("check confirmation: %w", err))
	}
	if confirmed {
		return domain.SkippedOutcome(customer.Name, "already confirmed")
	}

	claimed, err := p.claimRepo.Claim(ctx, customer.ID, weekStart, domain.PhaseAutoConfirm)
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("claim auto-confirm: %w", err))
	}
	if !claimed {
		return domain.SkippedOutcome(customer.Name, "claimed by another run")
	}

	// ListPendingSince orders by created_at then id, so the head is the
	// deterministic tie-break winner.
	first := pending[0]
	if _, err := p.recorder.Confirm(ctx, customer.ID, first.ID, domain.AutoConfirmMemo, now); err != nil {
		if rerr := p.claimRepo.Release(ctx, customer.ID, weekStart, domain.PhaseAutoConfirm); rerr != nil {
			p.logger.Warn("release auto-confirm claim failed", "customer_id", customer.ID, "err", rerr)
		}
		return domain.FailedOutcome(customer.Name, fmt.Errorf("auto-confirm draft: %w", err))
	}

	p.logger.Info("draft auto-confirmed", "customer", customer.Name, "title", first.Title)
	return domain.Outcome{Customer: customer.Name, Status: domain.OutcomeAutoConfirmed, Title: first.Title}
}
