package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpilot/internal/domain"
)

type stubRunner struct {
	phase domain.Phase

	mu      sync.Mutex
	seen    []string
	outcome func(customer *domain.Customer) domain.Outcome
}

func (r *stubRunner) Phase() domain.Phase { return r.phase }

func (r *stubRunner) ProcessCustomer(ctx context.Context, customer *domain.Customer, now time.Time) domain.Outcome {
	r.mu.Lock()
	r.seen = append(r.seen, customer.Name)
	r.mu.Unlock()
	if r.outcome != nil {
		return r.outcome(customer)
	}
	return domain.Outcome{Customer: customer.Name, Status: domain.OutcomeSent}
}

func newTestWorkflow(customerRepo *mockCustomerRepository, runners map[domain.Phase]*stubRunner) domain.WorkflowService {
	return NewWorkflowService(
		customerRepo,
		runners[domain.PhaseGenerate],
		runners[domain.PhaseNotifyInitial],
		runners[domain.PhaseNotifyReminder],
		runners[domain.PhaseAutoConfirm],
		WorkflowConfig{Concurrency: 2, CustomerTimeout: time.Second, Location: time.UTC},
		testLogger,
	)
}

func stubRunners() map[domain.Phase]*stubRunner {
	return map[domain.Phase]*stubRunner{
		domain.PhaseGenerate:       {phase: domain.PhaseGenerate},
		domain.PhaseNotifyInitial:  {phase: domain.PhaseNotifyInitial},
		domain.PhaseNotifyReminder: {phase: domain.PhaseNotifyReminder},
		domain.PhaseAutoConfirm:    {phase: domain.PhaseAutoConfirm},
	}
}

func TestPhaseForDay(t *testing.T) {
	want := map[time.Weekday]domain.Phase{
		time.Sunday:    domain.PhaseNone,
		time.Monday:    domain.PhaseNotifyInitial,
		time.Tuesday:   domain.PhaseNone,
		time.Wednesday: domain.PhaseNotifyReminder,
		time.Thursday:  domain.PhaseAutoConfirm,
		time.Friday:    domain.PhaseNone,
		time.Saturday:  domain.PhaseNone,
	}
	for day, phase := range want {
		assert.Equal(t, phase, PhaseForDay(day), day.String())
	}
}

func TestWorkflowService_RunScheduled(t *testing.T) {
	customers := []*domain.Customer{
		testCustomer("c1", "Alpha"),
		testCustomer("c2", "Beta"),
		testCustomer("c3", "Gamma"),
	}

	t.Run("dispatches by local weekday", func(t *testing.T) {
		cases := []struct {
			now  time.Time
			want domain.Phase
		}{
			{time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), domain.PhaseNotifyInitial},
			{time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), domain.PhaseNotifyReminder},
			{time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC), domain.PhaseAutoConfirm},
		}
		for _, tc := range cases {
			runners := stubRunners()
			svc := newTestWorkflow(&mockCustomerRepository{active: customers}, runners)

			report, err := svc.RunScheduled(context.Background(), tc.now)

			require.NoError(t, err)
			assert.Equal(t, tc.want, report.Task)
			assert.Len(t, runners[tc.want].seen, len(customers))
		}
	})

	t.Run("off days are a recorded no-op", func(t *testing.T) {
		runners := stubRunners()
		svc := newTestWorkflow(&mockCustomerRepository{active: customers}, runners)
		friday := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)

		report, err := svc.RunScheduled(context.Background(), friday)

		require.NoError(t, err)
		assert.Equal(t, domain.PhaseNone, report.Task)
		assert.Empty(t, report.Results)
		for _, r := range runners {
			assert.Empty(t, r.seen)
		}
	})

	t.Run("timezone decides the weekday", func(t *testing.T) {
		seoul, err := time.LoadLocation("Asia/Seoul")
		require.NoError(t, err)
		runners := stubRunners()
		svc := NewWorkflowService(
			&mockCustomerRepository{active: customers},
			runners[domain.PhaseGenerate], runners[domain.PhaseNotifyInitial],
			runners[domain.PhaseNotifyReminder], runners[domain.PhaseAutoConfirm],
			WorkflowConfig{Location: seoul},
			testLogger,
		)
		// Sunday 22:00 UTC is already Monday morning in Seoul.
		sundayUTC := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)

		report, err := svc.RunScheduled(context.Background(), sundayUTC)

		require.NoError(t, err)
		assert.Equal(t, domain.PhaseNotifyInitial, report.Task)
	})

	t.Run("one customer failing does not affect the others", func(t *testing.T) {
		runners := stubRunners()
		runners[domain.PhaseNotifyInitial].outcome = func(c *domain.Customer) domain.Outcome {
			if c.Name == "Beta" {
				return domain.FailedOutcome(c.Name, errors.New("send failed"))
			}
			return domain.Outcome{Customer: c.Name, Status: domain.OutcomeSent}
		}
		svc := newTestWorkflow(&mockCustomerRepository{active: customers}, runners)

		report, err := svc.RunScheduled(context.Background(), time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		require.Len(t, report.Results, 3)
		statuses := map[string]domain.OutcomeStatus{}
		for _, r := range report.Results {
			statuses[r.Customer] = r.Status
		}
		assert.Equal(t, domain.OutcomeSent, statuses["Alpha"])
		assert.Equal(t, domain.OutcomeFailed, statuses["Beta"])
		assert.Equal(t, domain.OutcomeSent, statuses["Gamma"])
	})

	t.Run("listing failure aborts the run", func(t *testing.T) {
		svc := newTestWorkflow(&mockCustomerRepository{listErr: errors.New("db down")}, stubRunners())

		_, err := svc.RunScheduled(context.Background(), time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list active customers")
	})
}

func TestWorkflowService_RunGeneration(t *testing.T) {
	customers := []*domain.Customer{testCustomer("c1", "Alpha"), testCustomer("c2", "Beta")}
	runners := stubRunners()
	svc := newTestWorkflow(&mockCustomerRepository{active: customers}, runners)

	report, err := svc.RunGeneration(context.Background(), time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseGenerate, report.Task)
	assert.Len(t, runners[domain.PhaseGenerate].seen, 2)
}

func TestWorkflowService_RunGenerationForCustomer(t *testing.T) {
	alpha := testCustomer("c1", "Alpha")
	repo := &mockCustomerRepository{byID: map[string]*domain.Customer{"c1": alpha}}

	t.Run("processes exactly the requested customer", func(t *testing.T) {
		runners := stubRunners()
		svc := newTestWorkflow(repo, runners)

		report, err := svc.RunGenerationForCustomer(context.Background(), "c1", time.Now())

		require.NoError(t, err)
		require.Len(t, report.Results, 1)
		assert.Equal(t, []string{"Alpha"}, runners[domain.PhaseGenerate].seen)
	})

	t.Run("unknown customer surfaces not found", func(t *testing.T) {
		svc := newTestWorkflow(repo, stubRunners())

		_, err := svc.RunGenerationForCustomer(context.Background(), "missing", time.Now())

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
