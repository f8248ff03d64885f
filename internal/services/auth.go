package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blogpilot/internal/domain"
)

// AdminAccount is the single operator account, loaded from configuration.
type AdminAccount struct {
	Email        string
	PasswordHash string
	PasswordSalt string
}

type authService struct {
	account     AdminAccount
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService authenticates the operator account and issues admin tokens.
func NewAuthService(account AdminAccount, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		account:     account,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if email != strings.ToLower(s.account.Email) {
		return "", domain.ErrForbidden
	}
	if err := s.hasher.Compare(s.account.PasswordHash, s.account.PasswordSalt, password); err != nil {
		return "", domain.ErrForbidden
	}
	token, err := s.tokenIssuer.Issue(email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
