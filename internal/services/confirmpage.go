package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogpilot/internal/domain"
)

type confirmPageService struct {
	customerRepo domain.CustomerRepository
	draftRepo    domain.DraftRepository
	confRepo     domain.ConfirmationRepository
	recorder     domain.ConfirmationRecorder
	logger       *slog.Logger
}

// NewConfirmPageService backs the public confirmation link.
func NewConfirmPageService(
	customerRepo domain.CustomerRepository,
	draftRepo domain.DraftRepository,
	confRepo domain.ConfirmationRepository,
	recorder domain.ConfirmationRecorder,
	logger *slog.Logger,
) domain.ConfirmPageService {
	return &confirmPageService{
		customerRepo: customerRepo,
		draftRepo:    draftRepo,
		confRepo:     confRepo,
		recorder:     recorder,
		logger:       logger,
	}
}

func (s *confirmPageService) Load(ctx context.Context, token string, now time.Time) (*domain.ConfirmPage, error) {
	customer, err := s.customerRepo.GetByConfirmToken(ctx, token)
	if err != nil {
		return nil, err
	}
	weekStart := domain.WeekStart(now)

	confirmed, err := s.confRepo.ExistsSince(ctx, customer.ID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("check confirmation: %w", err)
	}
	if confirmed {
		return &domain.ConfirmPage{CustomerName: customer.Name, AlreadyConfirmed: true}, nil
	}

	drafts, err := s.draftRepo.ListPendingSince(ctx, customer.ID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list pending drafts: %w", err)
	}
	return &domain.ConfirmPage{CustomerName: customer.Name, Drafts: drafts}, nil
}

func (s *confirmPageService) Select(ctx context.Context, token, draftID, memo string, now time.Time) (*domain.Confirmation, error) {
	customer, err := s.customerRepo.GetByConfirmToken(ctx, token)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	// A token only confirms its own customer's drafts.
	if draft.CustomerID != customer.ID {
		return nil, domain.ErrForbidden
	}

	conf, err := s.recorder.Confirm(ctx, customer.ID, draftID, memo, now)
	if err != nil {
		return nil, err
	}
	s.logger.Info("customer confirmed draft", "customer", customer.Name, "draft_id", draftID)
	return conf, nil
}
