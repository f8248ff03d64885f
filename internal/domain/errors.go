package domain

import "errors"

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrForbidden        = errors.New("forbidden")
	ErrDraftNotPending  = errors.New("draft is not pending or does not belong to the customer")
	ErrAlreadyConfirmed = errors.New("customer already confirmed this week")
)
