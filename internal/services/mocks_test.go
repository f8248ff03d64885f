package services

import (
	"context"
	"sync"
	"time"

	"blogpilot/internal/domain"
)

type mockCustomerRepository struct {
	active  []*domain.Customer
	byID    map[string]*domain.Customer
	byToken map[string]*domain.Customer
	listErr error
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error { return nil }

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockCustomerRepository) GetByConfirmToken(ctx context.Context, token string) (*domain.Customer, error) {
	if c, ok := m.byToken[token]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockCustomerRepository) ListActive(ctx context.Context) ([]*domain.Customer, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.active, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	return m.active, nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, id string, update domain.CustomerUpdate) (*domain.Customer, error) {
	return m.GetByID(ctx, id)
}

func (m *mockCustomerRepository) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

func (m *mockCustomerRepository) UpdateConfirmToken(ctx context.Context, id, token string) error {
	return nil
}

type mockDraftRepository struct {
	mu         sync.Mutex
	created    []*domain.Draft
	exists     bool
	existsErr  error
	pending    []*domain.Draft
	listErr    error
	createErr  error
	published  *domain.Draft
	publishErr error
}

func (m *mockDraftRepository) Create(ctx context.Context, d *domain.Draft) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, d)
	return nil
}

func (m *mockDraftRepository) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	for _, d := range m.pending {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDraftRepository) ExistsSince(ctx context.Context, customerID string, since time.Time) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockDraftRepository) ListPendingSince(ctx context.Context, customerID string, since time.Time) ([]*domain.Draft, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.pending, nil
}

func (m *mockDraftRepository) MarkPublished(ctx context.Context, id string) (*domain.Draft, error) {
	if m.publishErr != nil {
		return nil, m.publishErr
	}
	if m.published != nil {
		return m.published, nil
	}
	return nil, domain.ErrNotFound
}

type mockConfirmationRepository struct {
	exists    bool
	existsErr error
	recorded  []*domain.Confirmation
	recordErr error
}

func (m *mockConfirmationRepository) RecordSelection(ctx context.Context, c *domain.Confirmation) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	c.ID = "conf-1"
	c.ConfirmedAt = time.Now()
	m.recorded = append(m.recorded, c)
	return nil
}

func (m *mockConfirmationRepository) ExistsSince(ctx context.Context, customerID string, since time.Time) (bool, error) {
	return m.exists, m.existsErr
}

type mockNotificationRepository struct {
	mu        sync.Mutex
	created   []*domain.Notification
	createErr error
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, n)
	return nil
}

type mockUsedTopicRepository struct {
	titles    []string
	listErr   error
	created   []*domain.UsedTopic
	createErr error
}

func (m *mockUsedTopicRepository) Create(ctx context.Context, t *domain.UsedTopic) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, t)
	return nil
}

func (m *mockUsedTopicRepository) ListTitlesSince(ctx context.Context, customerID string, since time.Time) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.titles, nil
}

type claimKey struct {
	customerID string
	phase      domain.Phase
}

type mockPhaseClaimRepository struct {
	mu       sync.Mutex
	held     map[claimKey]bool
	claimErr error
	released []claimKey
}

func newMockPhaseClaimRepository() *mockPhaseClaimRepository {
	return &mockPhaseClaimRepository{held: map[claimKey]bool{}}
}

func (m *mockPhaseClaimRepository) Claim(ctx context.Context, customerID string, weekOf time.Time, phase domain.Phase) (bool, error) {
	if m.claimErr != nil {
		return false, m.claimErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := claimKey{customerID, phase}
	if m.held[key] {
		return false, nil
	}
	m.held[key] = true
	return true, nil
}

func (m *mockPhaseClaimRepository) Release(ctx context.Context, customerID string, weekOf time.Time, phase domain.Phase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := claimKey{customerID, phase}
	delete(m.held, key)
	m.released = append(m.released, key)
	return nil
}

type mockGenerator struct {
	candidates    []domain.DraftCandidate
	err           error
	gotExclusions []string
}

func (m *mockGenerator) Generate(ctx context.Context, customer *domain.Customer, excludeTitles []string) ([]domain.DraftCandidate, error) {
	m.gotExclusions = excludeTitles
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

type mockMessenger struct {
	mu      sync.Mutex
	sent    []*domain.ConfirmMessage
	sendErr error
}

func (m *mockMessenger) Send(ctx context.Context, msg *domain.ConfirmMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

type mockRecorder struct {
	confirmed []string
	err       error
	gotMemo   string
}

func (m *mockRecorder) Confirm(ctx context.Context, customerID, draftID, memo string, now time.Time) (*domain.Confirmation, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.confirmed = append(m.confirmed, draftID)
	m.gotMemo = memo
	return &domain.Confirmation{ID: "conf-1", CustomerID: customerID, DraftID: draftID, Memo: memo}, nil
}

func testCustomer(id, name string) *domain.Customer {
	return &domain.Customer{
		ID:           id,
		Name:         name,
		Phone:        "010-1234-5678",
		ConfirmToken: "tok-" + id,
		IsActive:     true,
	}
}
