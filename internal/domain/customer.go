package domain

import (
	"context"
	"time"
)

// Customer is a business subscribed to the weekly content cycle.
// Profile fields feed draft generation; ConfirmToken is the sole credential
// behind the public confirmation link.
// swagger:model Customer
type Customer struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email,omitempty"`
	BusinessType         string    `json:"business_type"`
	Keywords             []string  `json:"keywords"`
	Tone                 string    `json:"tone"`
	Specialty            string    `json:"specialty"`
	TargetAudience       string    `json:"target_audience"`
	BrandConcept         string    `json:"brand_concept"`
	MainServices         []string  `json:"main_services"`
	PriceRange           string    `json:"price_range"`
	LocationInfo         string    `json:"location_info"`
	PreferredExpressions []string  `json:"preferred_expressions"`
	AvoidedExpressions   []string  `json:"avoided_expressions"`
	SampleContent        string    `json:"sample_content,omitempty"`
	ConfirmToken         string    `json:"-"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CustomerUpdate carries the admin-editable fields of a customer.
// Nil pointers mean "leave unchanged".
type CustomerUpdate struct {
	Name                 *string
	Phone                *string
	Email                *string
	BusinessType         *string
	Keywords             *[]string
	Tone                 *string
	Specialty            *string
	TargetAudience       *string
	BrandConcept         *string
	MainServices         *[]string
	PriceRange           *string
	LocationInfo         *string
	PreferredExpressions *[]string
	AvoidedExpressions   *[]string
	SampleContent        *string
}

// CustomerFilter narrows admin customer listings.
type CustomerFilter struct {
	Active *bool
	Query  string
}

// CustomerRepository defines the interface for customer storage.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	GetByConfirmToken(ctx context.Context, token string) (*Customer, error)
	ListActive(ctx context.Context) ([]*Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*Customer, error)
	Update(ctx context.Context, id string, update CustomerUpdate) (*Customer, error)
	SetActive(ctx context.Context, id string, active bool) error
	UpdateConfirmToken(ctx context.Context, id, token string) error
}

// CustomerService defines the admin-facing customer management operations.
type CustomerService interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*Customer, error)
	Update(ctx context.Context, id string, update CustomerUpdate) (*Customer, error)
	SetActive(ctx context.Context, id string, active bool) error
	RotateConfirmToken(ctx context.Context, id string) (string, error)
}
