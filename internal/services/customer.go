package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"blogpilot/internal/domain"
)

const confirmTokenBytes = 32

var phoneRegexp = regexp.MustCompile(`^[0-9][0-9-]{7,18}$`)

type customerService struct {
	customerRepo domain.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates the admin-facing customer management service.
func NewCustomerService(customerRepo domain.CustomerRepository, logger *slog.Logger) domain.CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *customerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !phoneRegexp.MatchString(customer.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", domain.ErrInvalidInput)
	}

	token, err := generateConfirmToken()
	if err != nil {
		return nil, fmt.Errorf("generate confirm token: %w", err)
	}
	customer.ConfirmToken = token
	customer.IsActive = true
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if customer.Keywords == nil {
		customer.Keywords = []string{}
	}
	if customer.MainServices == nil {
		customer.MainServices = []string{}
	}
	if customer.PreferredExpressions == nil {
		customer.PreferredExpressions = []string{}
	}
	if customer.AvoidedExpressions == nil {
		customer.AvoidedExpressions = []string{}
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.logger.Info("customer created", "customer", customer.Name)
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	return s.customerRepo.List(ctx, filter)
}

func (s *customerService) Update(ctx context.Context, id string, update domain.CustomerUpdate) (*domain.Customer, error) {
	if update.Phone != nil && !phoneRegexp.MatchString(strings.TrimSpace(*update.Phone)) {
		return nil, fmt.Errorf("%w: invalid phone number", domain.ErrInvalidInput)
	}
	return s.customerRepo.Update(ctx, id, update)
}

func (s *customerService) SetActive(ctx context.Context, id string, active bool) error {
	return s.customerRepo.SetActive(ctx, id, active)
}

// RotateConfirmToken invalidates the public confirmation link by issuing a
// fresh token.
func (s *customerService) RotateConfirmToken(ctx context.Context, id string) (string, error) {
	token, err := generateConfirmToken()
	if err != nil {
		return "", fmt.Errorf("generate confirm token: %w", err)
	}
	if err := s.customerRepo.UpdateConfirmToken(ctx, id, token); err != nil {
		return "", err
	}
	s.logger.Info("confirm token rotated", "customer_id", id)
	return token, nil
}

func generateConfirmToken() (string, error) {
	buf := make([]byte, confirmTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
