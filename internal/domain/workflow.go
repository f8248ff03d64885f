package domain

import (
	"context"
	"time"
)

// Phase identifies one operation the orchestrator can run over the
// active-customer set.
type Phase string

const (
	PhaseGenerate       Phase = "generate"
	PhaseNotifyInitial  Phase = "notify_initial"
	PhaseNotifyReminder Phase = "notify_reminder"
	PhaseAutoConfirm    Phase = "auto_confirm"
	PhaseNone           Phase = "none"
)

// OutcomeStatus classifies a single customer's result within a batch run.
type OutcomeStatus string

const (
	OutcomeSkipped       OutcomeStatus = "skipped"
	OutcomeSent          OutcomeStatus = "sent"
	OutcomeFailed        OutcomeStatus = "failed"
	OutcomeGenerated     OutcomeStatus = "generated"
	OutcomeAutoConfirmed OutcomeStatus = "auto_confirmed"
)

// Outcome is the per-customer result of one phase run.
type Outcome struct {
	Customer string        `json:"customer"`
	Status   OutcomeStatus `json:"status"`
	Reason   string        `json:"reason,omitempty"`
	Title    string        `json:"title,omitempty"`
	Count    int           `json:"count,omitempty"`
}

// SkippedOutcome builds a skipped outcome with the given reason.
func SkippedOutcome(customer, reason string) Outcome {
	return Outcome{Customer: customer, Status: OutcomeSkipped, Reason: reason}
}

// FailedOutcome builds a failed outcome carrying the error text.
func FailedOutcome(customer string, err error) Outcome {
	o := Outcome{Customer: customer, Status: OutcomeFailed}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// WorkflowReport is the aggregate result of one orchestrator invocation.
type WorkflowReport struct {
	Task        Phase     `json:"task"`
	Results     []Outcome `json:"results"`
	ProcessedAt time.Time `json:"processed_at"`
}

// PhaseRunner processes a single customer for one phase. Implementations
// must be safe to run concurrently across customers and must turn every
// failure into an Outcome rather than abort the batch.
type PhaseRunner interface {
	Phase() Phase
	ProcessCustomer(ctx context.Context, customer *Customer, now time.Time) Outcome
}

// PhaseClaimRepository is the atomic per-(customer, week, phase) claim that
// closes the concurrent-duplicate race. Claim returns false when another
// invocation already holds the claim.
type PhaseClaimRepository interface {
	Claim(ctx context.Context, customerID string, weekOf time.Time, phase Phase) (bool, error)
	Release(ctx context.Context, customerID string, weekOf time.Time, phase Phase) error
}

// WorkflowService is the single entry point driven by external triggers.
type WorkflowService interface {
	// RunScheduled maps the calendar day of now to a phase per the weekly
	// table (Monday initial, Wednesday reminder, Thursday auto-confirm)
	// and runs it over all active customers.
	RunScheduled(ctx context.Context, now time.Time) (*WorkflowReport, error)
	// RunGeneration runs the draft-generation phase; it has its own cadence
	// and is idempotent regardless of how often it fires.
	RunGeneration(ctx context.Context, now time.Time) (*WorkflowReport, error)
	// RunGenerationForCustomer generates drafts for a single customer,
	// bypassing the active-set iteration (manual admin trigger).
	RunGenerationForCustomer(ctx context.Context, customerID string, now time.Time) (*WorkflowReport, error)
}
