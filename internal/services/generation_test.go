package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpilot/internal/domain"
)

var testLogger = slog.New(slog.DiscardHandler)

// A Monday in KST terms; the phases only care about the calendar date.
var monday = time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)

func TestGenerationPhase_ProcessCustomer(t *testing.T) {
	customer := testCustomer("cust-1", "Hana Clinic")

	t.Run("generates and persists drafts", func(t *testing.T) {
		draftRepo := &mockDraftRepository{}
		topicRepo := &mockUsedTopicRepository{titles: []string{"old topic"}}
		claimRepo := newMockPhaseClaimRepository()
		gen := &mockGenerator{candidates: []domain.DraftCandidate{
			{Title: "A", Content: "body a", MainKeyword: "kw-a"},
			{Title: "B", Content: "body b", MainKeyword: "kw-b"},
			{Title: "C", Content: "body c", MainKeyword: "kw-c"},
		}}
		phase := NewGenerationPhase(draftRepo, topicRepo, claimRepo, gen, testLogger)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeGenerated, outcome.Status)
		assert.Equal(t, 3, outcome.Count)
		require.Len(t, draftRepo.created, 3)
		assert.Equal(t, domain.DraftPending, draftRepo.created[0].Status)
		assert.Equal(t, "kw-a", draftRepo.created[0].MainKeyword)
		assert.Equal(t, []string{"old topic"}, gen.gotExclusions)
	})

	t.Run("skips when drafts already exist", func(t *testing.T) {
		draftRepo := &mockDraftRepository{exists: true}
		claimRepo := newMockPhaseClaimRepository()
		gen := &mockGenerator{err: errors.New("should not be called")}
		phase := NewGenerationPhase(draftRepo, &mockUsedTopicRepository{}, claimRepo, gen, testLogger)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSkipped, outcome.Status)
		assert.Equal(t, "drafts already exist", outcome.Reason)
		assert.Empty(t, claimRepo.held)
	})

	t.Run("second run for the same week skips on the claim", func(t *testing.T) {
		claimRepo := newMockPhaseClaimRepository()
		claimRepo.held[claimKey{customer.ID, domain.PhaseGenerate}] = true
		phase := NewGenerationPhase(&mockDraftRepository{}, &mockUsedTopicRepository{}, claimRepo, &mockGenerator{}, testLogger)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSkipped, outcome.Status)
		assert.Equal(t, "claimed by another run", outcome.Reason)
	})

	t.Run("generator failure releases the claim", func(t *testing.T) {
		claimRepo := newMockPhaseClaimRepository()
		gen := &mockGenerator{err: errors.New("upstream 500")}
		phase := NewGenerationPhase(&mockDraftRepository{}, &mockUsedTopicRepository{}, claimRepo, gen, testLogger)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeFailed, outcome.Status)
		assert.Contains(t, outcome.Reason, "generate drafts")
		require.Len(t, claimRepo.released, 1)
		assert.Empty(t, claimRepo.held)
	})

	t.Run("empty generator output is a failure", func(t *testing.T) {
		claimRepo := newMockPhaseClaimRepository()
		phase := NewGenerationPhase(&mockDraftRepository{}, &mockUsedTopicRepository{}, claimRepo, &mockGenerator{}, testLogger)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeFailed, outcome.Status)
		assert.Empty(t, claimRepo.held)
	})

	t.Run("trims exclusion list to the most recent titles", func(t *testing.T) {
		titles := make([]string, 30)
		for i := range titles {
			titles[i] = string(rune('a' + i))
		}
		topicRepo := &mockUsedTopicRepository{titles: titles}
		claimRepo := newMockPhaseClaimRepository()
		gen := &mockGenerator{candidates: []domain.DraftCandidate{{Title: "A", Content: "a"}}}
		phase := NewGenerationPhase(&mockDraftRepository{}, topicRepo, claimRepo, gen, testLogger)

		phase.ProcessCustomer(context.Background(), customer, monday)

		require.Len(t, gen.gotExclusions, maxExcludedTitles)
		assert.Equal(t, titles[len(titles)-maxExcludedTitles:], gen.gotExclusions)
	})

	t.Run("persist failure keeps the claim", func(t *testing.T) {
		draftRepo := &mockDraftRepository{createErr: errors.New("disk full")}
		claimRepo := newMockPhaseClaimRepository()
		gen := &mockGenerator{candidates: []domain.DraftCandidate{{Title: "A", Content: "a"}}}
		phase := NewGenerationPhase(draftRepo, &mockUsedTopicRepository{}, claimRepo, gen, testLogger)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeFailed, outcome.Status)
		assert.Len(t, claimRepo.held, 1)
	})
}
