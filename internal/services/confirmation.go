package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blogpilot/internal/domain"
)

type confirmationService struct {
	confRepo domain.ConfirmationRepository
	logger   *slog.Logger
}

// NewConfirmationRecorder creates the recorder that finalizes one draft as a
// customer's weekly choice. Both the public confirm endpoint and the
// auto-confirm phase go through it, so the per-(customer, week) invariant is
// enforced in one place.
func NewConfirmationRecorder(confRepo domain.ConfirmationRepository, logger *slog.Logger) domain.ConfirmationRecorder {
	return &confirmationService{
		confRepo: confRepo,
		logger:   logger,
	}
}

func (s *confirmationService) Confirm(ctx context.Context, customerID, draftID, memo string, now time.Time) (*domain.Confirmation, error) {
	weekStart := domain.WeekStart(now)

	confirmed, err := s.confRepo.ExistsSince(ctx, customerID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("check confirmation: %w", err)
	}
	if confirmed {
		return nil, domain.ErrAlreadyConfirmed
	}

	conf := &domain.Confirmation{
		CustomerID: customerID,
		DraftID:    draftID,
		WeekOf:     domain.DateOf(now),
		Memo:       memo,
	}
	if err := s.confRepo.RecordSelection(ctx, conf); err != nil {
		if errors.Is(err, domain.ErrDraftNotPending) {
			return nil, domain.ErrDraftNotPending
		}
		return nil, fmt.Errorf("record selection: %w", err)
	}

	s.logger.Info("confirmation recorded", "customer_id", customerID, "draft_id", draftID)
	return conf, nil
}
