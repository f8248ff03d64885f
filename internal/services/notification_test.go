package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpilot/internal/domain"
)

func pendingDrafts(customerID string, n int) []*domain.Draft {
	drafts := make([]*domain.Draft, n)
	for i := range drafts {
		drafts[i] = &domain.Draft{
			ID:         string(rune('a' + i)),
			CustomerID: customerID,
			Title:      "draft",
			Status:     domain.DraftPending,
		}
	}
	return drafts
}

func TestNotificationPhase_ProcessCustomer(t *testing.T) {
	customer := testCustomer("cust-1", "Hana Clinic")

	t.Run("sends the confirm link and writes a sent audit row", func(t *testing.T) {
		draftRepo := &mockDraftRepository{pending: pendingDrafts(customer.ID, 3)}
		notifRepo := &mockNotificationRepository{}
		messenger := &mockMessenger{}
		phase := NewNotificationPhase(
			domain.NotificationInitial,
			draftRepo, &mockConfirmationRepository{}, notifRepo,
			newMockPhaseClaimRepository(), messenger,
			"https://blogpilot.example.com/", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSent, outcome.Status)
		require.Len(t, messenger.sent, 1)
		assert.Equal(t, "https://blogpilot.example.com/confirm/tok-cust-1", messenger.sent[0].ConfirmLink)
		assert.Equal(t, domain.NotificationInitial, messenger.sent[0].Kind)
		require.Len(t, notifRepo.created, 1)
		assert.Equal(t, domain.NotificationSent, notifRepo.created[0].Status)
	})

	t.Run("skips when there are no pending drafts", func(t *testing.T) {
		messenger := &mockMessenger{sendErr: errors.New("should not be called")}
		phase := NewNotificationPhase(
			domain.NotificationInitial,
			&mockDraftRepository{}, &mockConfirmationRepository{}, &mockNotificationRepository{},
			newMockPhaseClaimRepository(), messenger, "https://x", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSkipped, outcome.Status)
		assert.Equal(t, "no pending drafts", outcome.Reason)
	})

	t.Run("reminder skips confirmed customers without an audit row", func(t *testing.T) {
		notifRepo := &mockNotificationRepository{}
		messenger := &mockMessenger{}
		phase := NewNotificationPhase(
			domain.NotificationReminder,
			&mockDraftRepository{pending: pendingDrafts(customer.ID, 3)},
			&mockConfirmationRepository{exists: true},
			notifRepo, newMockPhaseClaimRepository(), messenger, "https://x", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSkipped, outcome.Status)
		assert.Equal(t, "already confirmed", outcome.Reason)
		assert.Empty(t, messenger.sent)
		assert.Empty(t, notifRepo.created)
	})

	t.Run("initial send ignores existing confirmations", func(t *testing.T) {
		messenger := &mockMessenger{}
		phase := NewNotificationPhase(
			domain.NotificationInitial,
			&mockDraftRepository{pending: pendingDrafts(customer.ID, 3)},
			&mockConfirmationRepository{exists: true},
			&mockNotificationRepository{}, newMockPhaseClaimRepository(), messenger, "https://x", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSent, outcome.Status)
		assert.Len(t, messenger.sent, 1)
	})

	t.Run("skips when another run holds the claim", func(t *testing.T) {
		claimRepo := newMockPhaseClaimRepository()
		claimRepo.held[claimKey{customer.ID, domain.PhaseNotifyInitial}] = true
		messenger := &mockMessenger{}
		phase := NewNotificationPhase(
			domain.NotificationInitial,
			&mockDraftRepository{pending: pendingDrafts(customer.ID, 3)},
			&mockConfirmationRepository{}, &mockNotificationRepository{},
			claimRepo, messenger, "https://x", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeSkipped, outcome.Status)
		assert.Equal(t, "already notified this week", outcome.Reason)
		assert.Empty(t, messenger.sent)
	})

	t.Run("delivery failure writes a failed audit row and releases the claim", func(t *testing.T) {
		notifRepo := &mockNotificationRepository{}
		claimRepo := newMockPhaseClaimRepository()
		phase := NewNotificationPhase(
			domain.NotificationInitial,
			&mockDraftRepository{pending: pendingDrafts(customer.ID, 3)},
			&mockConfirmationRepository{}, notifRepo,
			claimRepo, &mockMessenger{sendErr: errors.New("gateway timeout")}, "https://x", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeFailed, outcome.Status)
		require.Len(t, notifRepo.created, 1)
		assert.Equal(t, domain.NotificationFailed, notifRepo.created[0].Status)
		assert.Empty(t, claimRepo.held)
	})

	t.Run("audit write failure after a successful send fails the customer", func(t *testing.T) {
		phase := NewNotificationPhase(
			domain.NotificationInitial,
			&mockDraftRepository{pending: pendingDrafts(customer.ID, 3)},
			&mockConfirmationRepository{},
			&mockNotificationRepository{createErr: errors.New("insert failed")},
			newMockPhaseClaimRepository(), &mockMessenger{}, "https://x", testLogger,
		)

		outcome := phase.ProcessCustomer(context.Background(), customer, monday)

		require.Equal(t, domain.OutcomeFailed, outcome.Status)
		assert.Contains(t, outcome.Reason, "record notification")
	})
}
