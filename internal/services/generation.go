package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogpilot/internal/domain"
)

const (
	usedTopicWindowMonths = 6
	maxExcludedTitles     = 20
)

type generationPhase struct {
	draftRepo domain.DraftRepository
	topicRepo domain.UsedTopicRepository
	claimRepo domain.PhaseClaimRepository
	generator domain.DraftGenerator
	logger    *slog.Logger
}

// NewGenerationPhase creates the draft-generation phase. It is idempotent per
// (customer, week): an existing draft batch or a lost claim turns into a skip.
func NewGenerationPhase(
	draftRepo domain.DraftRepository,
	topicRepo domain.UsedTopicRepository,
	claimRepo domain.PhaseClaimRepository,
	generator domain.DraftGenerator,
	logger *slog.Logger,
) domain.PhaseRunner {
	return &generationPhase{
		draftRepo: draftRepo,
		topicRepo: topicRepo,
		claimRepo: claimRepo,
		generator: generator,
		logger:    logger,
	}
}

func (p *generationPhase) Phase() domain.Phase {
	return domain.PhaseGenerate
}

func (p *generationPhase) ProcessCustomer(ctx context.Context, customer *domain.Customer, now time.Time) domain.Outcome {
	today := domain.DateOf(now)
	weekStart := domain.WeekStart(now)

	exists, err := p.draftRepo.ExistsSince(ctx, customer.ID, today)
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("check existing drafts: %w", err))
	}
	if exists {
		return domain.SkippedOutcome(customer.Name, "drafts already exist")
	}

	claimed, err := p.claimRepo.Claim(ctx, customer.ID, weekStart, domain.PhaseGenerate)
	if err != nil {
		return domain.FailedOutcome(customer.Name, fmt.Errorf("claim generation: %w", err))
	}
	if !claimed {
		return domain.SkippedOutcome(customer.Name, "claimed by another run")
	}

	since := today.AddDate(0, -usedTopicWindowMonths, 0)
	titles, err := p.topicRepo.ListTitlesSince(ctx, customer.ID, since)
	if err != nil {
		p.release(ctx, customer.ID, weekStart)
		return domain.FailedOutcome(customer.Name, fmt.Errorf("load used topics: %w", err))
	}
	if len(titles) > maxExcludedTitles {
		titles = titles[len(titles)-maxExcludedTitles:]
	}

	candidates, err := p.generator.Generate(ctx, customer, titles)
	if err != nil {
		p.release(ctx, customer.ID, weekStart)
		return domain.FailedOutcome(customer.Name, fmt.Errorf("generate drafts: %w", err))
	}
	if len(candidates) == 0 {
		p.release(ctx, customer.ID, weekStart)
		return domain.FailedOutcome(customer.Name, fmt.Errorf("generator returned no drafts"))
	}

	for _, cand := range candidates {
		draft := domain.NewDraft(customer.ID, today, cand.Title, cand.Content, cand.MainKeyword)
		if err := p.draftRepo.Create(ctx, draft); err != nil {
			// Partially written batches are covered by the existence check on
			// the next run; keep the claim.
			return domain.FailedOutcome(customer.Name, fmt.Errorf("persist draft: %w", err))
		}
	}

	p.logger.Info("drafts generated", "customer", customer.Name, "count", len(candidates))
	return domain.Outcome{Customer: customer.Name, Status: domain.OutcomeGenerated, Count: len(candidates)}
}

func (p *generationPhase) release(ctx context.Context, customerID string, weekStart time.Time) {
	if err := p.claimRepo.Release(ctx, customerID, weekStart, domain.PhaseGenerate); err != nil {
		p.logger.Warn("release generation claim failed", "customer_id", customerID, "err", err)
	}
}
