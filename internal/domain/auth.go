package domain

import (
	"context"
	"time"
)

// TokenIssuer issues bearer tokens (e.g. JWT) for the authenticated admin.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// AuthService authenticates the operator account for the admin API.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}
