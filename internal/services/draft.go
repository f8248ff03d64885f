package services

import (
	"context"
	"log/slog"
	"time"

	"blogpilot/internal/domain"
)

type draftService struct {
	draftRepo domain.DraftRepository
	topicRepo domain.UsedTopicRepository
	logger    *slog.Logger
}

// NewDraftService creates the admin-facing draft operations.
func NewDraftService(draftRepo domain.DraftRepository, topicRepo domain.UsedTopicRepository, logger *slog.Logger) domain.DraftService {
	return &draftService{
		draftRepo: draftRepo,
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (s *draftService) Publish(ctx context.Context, draftID string) (*domain.Draft, error) {
	draft, err := s.draftRepo.MarkPublished(ctx, draftID)
	if err != nil {
		return nil, err
	}

	topic := &domain.UsedTopic{
		CustomerID:  draft.CustomerID,
		Title:       draft.Title,
		PublishedAt: time.Now(),
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		// The draft is already published; the missing history entry only
		// weakens future topic exclusion.
		s.logger.Error("record used topic failed", "draft_id", draftID, "err", err)
	}

	s.logger.Info("draft published", "draft_id", draftID, "title", draft.Title)
	return draft, nil
}
