package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"blogpilot/internal/domain"
)

// WorkflowConfig bounds one batch invocation.
type WorkflowConfig struct {
	// Concurrency caps how many customers are processed at once.
	Concurrency int
	// CustomerTimeout bounds one customer's slice of the batch, covering the
	// generation or messaging call so a hung upstream cannot stall siblings.
	CustomerTimeout time.Duration
	// Location is the service's fixed local calendar.
	Location *time.Location
}

type workflowService struct {
	customerRepo domain.CustomerRepository
	generation   domain.PhaseRunner
	initial      domain.PhaseRunner
	reminder     domain.PhaseRunner
	autoConfirm  domain.PhaseRunner
	cfg          WorkflowConfig
	logger       *slog.Logger
}

// NewWorkflowService wires the phase runners behind the single batch entry
// point driven by external triggers.
func NewWorkflowService(
	customerRepo domain.CustomerRepository,
	generation, initial, reminder, autoConfirm domain.PhaseRunner,
	cfg WorkflowConfig,
	logger *slog.Logger,
) domain.WorkflowService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.CustomerTimeout <= 0 {
		cfg.CustomerTimeout = 90 * time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &workflowService{
		customerRepo: customerRepo,
		generation:   generation,
		initial:      initial,
		reminder:     reminder,
		autoConfirm:  autoConfirm,
		cfg:          cfg,
		logger:       logger,
	}
}

// PhaseForDay is the total day-of-week to phase table: Monday initial send,
// Wednesday reminder, Thursday auto-confirm, every other day a no-op.
func PhaseForDay(day time.Weekday) domain.Phase {
	switch day {
	case time.Monday:
		return domain.PhaseNotifyInitial
	case time.Wednesday:
		return domain.PhaseNotifyReminder
	case time.Thursday:
		return domain.PhaseAutoConfirm
	default:
		return domain.PhaseNone
	}
}

func (s *workflowService) RunScheduled(ctx context.Context, now time.Time) (*domain.WorkflowReport, error) {
	local := now.In(s.cfg.Location)
	var runner domain.PhaseRunner
	switch PhaseForDay(local.Weekday()) {
	case domain.PhaseNotifyInitial:
		runner = s.initial
	case domain.PhaseNotifyReminder:
		runner = s.reminder
	case domain.PhaseAutoConfirm:
		runner = s.autoConfirm
	default:
		return &domain.WorkflowReport{
			Task:        domain.PhaseNone,
			Results:     []domain.Outcome{},
			ProcessedAt: time.Now(),
		}, nil
	}
	return s.runBatch(ctx, runner, local)
}

func (s *workflowService) RunGeneration(ctx context.Context, now time.Time) (*domain.WorkflowReport, error) {
	return s.runBatch(ctx, s.generation, now.In(s.cfg.Location))
}

func (s *workflowService) RunGenerationForCustomer(ctx context.Context, customerID string, now time.Time) (*domain.WorkflowReport, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	outcome := s.processOne(ctx, s.generation, customer, now.In(s.cfg.Location))
	return &domain.WorkflowReport{
		Task:        s.generation.Phase(),
		Results:     []domain.Outcome{outcome},
		ProcessedAt: time.Now(),
	}, nil
}

// runBatch processes every active customer through one phase. Customers are
// independent, so failures stay per-customer; only "cannot even list the
// customers" aborts the run.
func (s *workflowService) runBatch(ctx context.Context, runner domain.PhaseRunner, now time.Time) (*domain.WorkflowReport, error) {
	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active customers: %w", err)
	}

	results := make([]domain.Outcome, len(customers))
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, customer := range customers {
		g.Go(func() error {
			results[i] = s.processOne(ctx, runner, customer, now)
			return nil
		})
	}
	_ = g.Wait()

	for _, outcome := range results {
		if outcome.Status == domain.OutcomeFailed {
			s.logger.Error("customer phase failed", "phase", runner.Phase(), "customer", outcome.Customer, "reason", outcome.Reason)
		}
	}

	s.logger.Info("workflow batch finished", "phase", runner.Phase(), "customers", len(customers))
	return &domain.WorkflowReport{
		Task:        runner.Phase(),
		Results:     results,
		ProcessedAt: time.Now(),
	}, nil
}

func (s *workflowService) processOne(ctx context.Context, runner domain.PhaseRunner, customer *domain.Customer, now time.Time) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.SkippedOutcome(customer.Name, "batch cancelled")
	}
	cctx, cancel := context.WithTimeout(ctx, s.cfg.CustomerTimeout)
	defer cancel()
	return runner.ProcessCustomer(cctx, customer, now)
}
