package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpilot/internal/domain"
)

type fakeCustomerService struct {
	customer  *domain.Customer
	err       error
	gotActive *bool
	token     string
}

func (f *fakeCustomerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	c.ID = "cust-1"
	return c, nil
}

func (f *fakeCustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if f.customer == nil {
		return nil, domain.ErrNotFound
	}
	return f.customer, nil
}

func (f *fakeCustomerService) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	if f.customer == nil {
		return []*domain.Customer{}, nil
	}
	return []*domain.Customer{f.customer}, nil
}

func (f *fakeCustomerService) Update(ctx context.Context, id string, update domain.CustomerUpdate) (*domain.Customer, error) {
	if f.customer == nil {
		return nil, domain.ErrNotFound
	}
	return f.customer, nil
}

func (f *fakeCustomerService) SetActive(ctx context.Context, id string, active bool) error {
	f.gotActive = &active
	return f.err
}

func (f *fakeCustomerService) RotateConfirmToken(ctx context.Context, id string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

type fakeDraftService struct {
	draft *domain.Draft
	err   error
}

func (f *fakeDraftService) Publish(ctx context.Context, draftID string) (*domain.Draft, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.draft, nil
}

func newCustomerController(svc domain.CustomerService, drafts domain.DraftService, workflow domain.WorkflowService) *CustomerController {
	return NewCustomerController(slog.New(slog.DiscardHandler), svc, drafts, workflow)
}

func TestCustomerController_Create(t *testing.T) {
	t.Run("creates a customer", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{}, &fakeWorkflowService{})

		body := `{"name":"하나의원","phone":"010-1234-5678","keywords":["레이저"]}`
		req := httptest.NewRequest(http.MethodPost, "/admin/customers", strings.NewReader(body))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "cust-1")
	})

	t.Run("rejects a missing phone", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{}, &fakeWorkflowService{})

		req := httptest.NewRequest(http.MethodPost, "/admin/customers", strings.NewReader(`{"name":"하나의원"}`))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{}, &fakeWorkflowService{})

		body := `{"name":"하나의원","phone":"010-1234-5678","confirm_token":"sneaky"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/customers", strings.NewReader(body))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerController_Get(t *testing.T) {
	t.Run("unknown customer is 404", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{}, &fakeWorkflowService{})

		req := httptest.NewRequest(http.MethodGet, "/admin/customers/missing", nil)
		req.SetPathValue("customerID", "missing")
		rec := httptest.NewRecorder()
		c.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("the confirm token never appears in responses", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{customer: &domain.Customer{
			ID:           "cust-1",
			Name:         "하나의원",
			ConfirmToken: "super-secret-token",
		}}, &fakeDraftService{}, &fakeWorkflowService{})

		req := httptest.NewRequest(http.MethodGet, "/admin/customers/cust-1", nil)
		req.SetPathValue("customerID", "cust-1")
		rec := httptest.NewRecorder()
		c.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "super-secret-token")
	})
}

func TestCustomerController_SetActive(t *testing.T) {
	svc := &fakeCustomerService{}
	c := newCustomerController(svc, &fakeDraftService{}, &fakeWorkflowService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/customers/cust-1/activate", strings.NewReader(`{"active":false}`))
	req.SetPathValue("customerID", "cust-1")
	rec := httptest.NewRecorder()
	c.SetActive(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.gotActive)
	assert.False(t, *svc.gotActive)
}

func TestCustomerController_RotateToken(t *testing.T) {
	c := newCustomerController(&fakeCustomerService{token: "fresh-token"}, &fakeDraftService{}, &fakeWorkflowService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/customers/cust-1/token", nil)
	req.SetPathValue("customerID", "cust-1")
	rec := httptest.NewRecorder()
	c.RotateToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-token")
}

func TestCustomerController_GenerateDrafts(t *testing.T) {
	workflow := &fakeWorkflowService{report: &domain.WorkflowReport{Task: domain.PhaseGenerate}}
	c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{}, workflow)

	req := httptest.NewRequest(http.MethodPost, "/admin/customers/cust-1/drafts/generate", nil)
	req.SetPathValue("customerID", "cust-1")
	rec := httptest.NewRecorder()
	c.GenerateDrafts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cust-1", workflow.gotCustomer)
}

func TestCustomerController_PublishDraft(t *testing.T) {
	t.Run("publishes a selected draft", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{
			draft: &domain.Draft{ID: "d-1", Status: domain.DraftPublished},
		}, &fakeWorkflowService{})

		req := httptest.NewRequest(http.MethodPost, "/admin/drafts/d-1/publish", nil)
		req.SetPathValue("draftID", "d-1")
		rec := httptest.NewRecorder()
		c.PublishDraft(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("an unselected draft is a conflict", func(t *testing.T) {
		c := newCustomerController(&fakeCustomerService{}, &fakeDraftService{err: domain.ErrDraftNotPending}, &fakeWorkflowService{})

		req := httptest.NewRequest(http.MethodPost, "/admin/drafts/d-1/publish", nil)
		req.SetPathValue("draftID", "d-1")
		rec := httptest.NewRecorder()
		c.PublishDraft(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
