package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "blogpilot/internal/delivery/http/helpers"
	"blogpilot/internal/domain"
)

// CreateCustomerRequest is the request body for POST /admin/customers
type CreateCustomerRequest struct {
	Name                 string   `json:"name"`
	Phone                string   `json:"phone"`
	Email                string   `json:"email"`
	BusinessType         string   `json:"business_type"`
	Keywords             []string `json:"keywords"`
	Tone                 string   `json:"tone"`
	Specialty            string   `json:"specialty"`
	TargetAudience       string   `json:"target_audience"`
	BrandConcept         string   `json:"brand_concept"`
	MainServices         []string `json:"main_services"`
	PriceRange           string   `json:"price_range"`
	LocationInfo         string   `json:"location_info"`
	PreferredExpressions []string `json:"preferred_expressions"`
	AvoidedExpressions   []string `json:"avoided_expressions"`
	SampleContent        string   `json:"sample_content"`
}

// Validate implements Validator.
func (c CreateCustomerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

// UpdateCustomerRequest is the request body for PATCH /admin/customers/{customerID}.
// Absent fields are left unchanged.
type UpdateCustomerRequest struct {
	Name                 *string   `json:"name"`
	Phone                *string   `json:"phone"`
	Email                *string   `json:"email"`
	BusinessType         *string   `json:"business_type"`
	Keywords             *[]string `json:"keywords"`
	Tone                 *string   `json:"tone"`
	Specialty            *string   `json:"specialty"`
	TargetAudience       *string   `json:"target_audience"`
	BrandConcept         *string   `json:"brand_concept"`
	MainServices         *[]string `json:"main_services"`
	PriceRange           *string   `json:"price_range"`
	LocationInfo         *string   `json:"location_info"`
	PreferredExpressions *[]string `json:"preferred_expressions"`
	AvoidedExpressions   *[]string `json:"avoided_expressions"`
	SampleContent        *string   `json:"sample_content"`
}

// Validate implements Validator.
func (u UpdateCustomerRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if u.Phone != nil && strings.TrimSpace(*u.Phone) == "" {
		errs = append(errs, "phone cannot be empty")
	}
	return errs
}

// SetActiveRequest is the request body for POST /admin/customers/{customerID}/activate
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// RotateTokenResponse is the response body for POST /admin/customers/{customerID}/token
type RotateTokenResponse struct {
	ConfirmToken string `json:"confirm_token"`
}

type CustomerController struct {
	Logger   *slog.Logger
	Service  domain.CustomerService
	Drafts   domain.DraftService
	Workflow domain.WorkflowService
}

func NewCustomerController(logger *slog.Logger, svc domain.CustomerService, drafts domain.DraftService, workflow domain.WorkflowService) *CustomerController {
	return &CustomerController{
		Logger:   logger,
		Service:  svc,
		Drafts:   drafts,
		Workflow: workflow,
	}
}

// Create godoc
// @Summary Register a customer
// @Description Create a customer with their content profile. A confirmation-link token is generated and the customer starts active.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCustomerRequest true "Customer profile"
// @Success 201 {object} helpers.APIResponse "data contains the created customer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/customers [post]
func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	customer, err := c.Service.Create(r.Context(), &domain.Customer{
		Name:                 req.Name,
		Phone:                req.Phone,
		Email:                req.Email,
		BusinessType:         req.BusinessType,
		Keywords:             req.Keywords,
		Tone:                 req.Tone,
		Specialty:            req.Specialty,
		TargetAudience:       req.TargetAudience,
		BrandConcept:         req.BrandConcept,
		MainServices:         req.MainServices,
		PriceRange:           req.PriceRange,
		LocationInfo:         req.LocationInfo,
		PreferredExpressions: req.PreferredExpressions,
		AvoidedExpressions:   req.AvoidedExpressions,
		SampleContent:        req.SampleContent,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, customer)
}

// List godoc
// @Summary List customers
// @Description List customers, optionally filtered by active flag and a name query.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active flag"
// @Param q query string false "Name substring filter"
// @Success 200 {object} helpers.APIResponse "data contains the customer list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/customers [get]
func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CustomerFilter{Query: r.URL.Query().Get("q")}
	if s := r.URL.Query().Get("active"); s != "" {
		active := s == "true"
		filter.Active = &active
	}
	customers, err := c.Service.List(r.Context(), filter)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, customers)
}

// Get godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerID path string true "Customer ID"
// @Success 200 {object} helpers.APIResponse "data contains the customer"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/customers/{customerID} [get]
func (c *CustomerController) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := c.Service.GetByID(r.Context(), r.PathValue("customerID"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, customer)
}

// Update godoc
// @Summary Update a customer profile
// @Description Partially update a customer. Absent fields are left unchanged.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerID path string true "Customer ID"
// @Param body body UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated customer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/customers/{customerID} [patch]
func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	customer, err := c.Service.Update(r.Context(), r.PathValue("customerID"), domain.CustomerUpdate{
		Name:                 req.Name,
		Phone:                req.Phone,
		Email:                req.Email,
		BusinessType:         req.BusinessType,
		Keywords:             req.Keywords,
		Tone:                 req.Tone,
		Specialty:            req.Specialty,
		TargetAudience:       req.TargetAudience,
		BrandConcept:         req.BrandConcept,
		MainServices:         req.MainServices,
		PriceRange:           req.PriceRange,
		LocationInfo:         req.LocationInfo,
		PreferredExpressions: req.PreferredExpressions,
		AvoidedExpressions:   req.AvoidedExpressions,
		SampleContent:        req.SampleContent,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, customer)
}

// SetActive godoc
// @Summary Activate or deactivate a customer
// @Description Inactive customers are excluded from every weekly phase.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerID path string true "Customer ID"
// @Param body body SetActiveRequest true "Desired active flag"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/customers/{customerID}/activate [post]
func (c *CustomerController) SetActive(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetActive(r.Context(), r.PathValue("customerID"), req.Active); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RotateToken godoc
// @Summary Rotate a customer's confirmation token
// @Description Invalidates the current public confirmation link and returns a fresh token.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerID path string true "Customer ID"
// @Success 200 {object} helpers.APIResponse "data contains the new confirm token"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/customers/{customerID}/token [post]
func (c *CustomerController) RotateToken(w http.ResponseWriter, r *http.Request) {
	token, err := c.Service.RotateConfirmToken(r.Context(), r.PathValue("customerID"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RotateTokenResponse{ConfirmToken: token})
}

// GenerateDrafts godoc
// @Summary Generate drafts for one customer
// @Description Manually trigger draft generation for a single customer, outside the weekly cadence. Skipped if drafts already exist this week.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerID path string true "Customer ID"
// @Success 200 {object} helpers.APIResponse "data contains the workflow report"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/customers/{customerID}/drafts/generate [post]
func (c *CustomerController) GenerateDrafts(w http.ResponseWriter, r *http.Request) {
	report, err := c.Workflow.RunGenerationForCustomer(r.Context(), r.PathValue("customerID"), time.Now())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}

// PublishDraft godoc
// @Summary Publish a selected draft
// @Description Marks a selected draft as published and appends its title to the customer's used-topic history.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {object} helpers.APIResponse "data contains the published draft"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/drafts/{draftID}/publish [post]
func (c *CustomerController) PublishDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := c.Drafts.Publish(r.Context(), r.PathValue("draftID"))
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotPending) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "draft is not selected")
			return
		}
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, draft)
}

func (c *CustomerController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "customer not found")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}
