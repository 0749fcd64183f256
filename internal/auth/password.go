package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid operator or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// PasswordAuthenticator checks a single operator against a bcrypt hash
// supplied through configuration.
type PasswordAuthenticator struct {
	operator     string
	passwordHash []byte
}

// NewPasswordAuthenticator creates an authenticator for one operator.
func NewPasswordAuthenticator(operator, passwordHash string) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		operator:     operator,
		passwordHash: []byte(passwordHash),
	}
}

// HashPassword returns the bcrypt hash to put in configuration.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Authenticate verifies the operator name and password.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, operator, credential string) error {
	if subtle.ConstantTimeCompare([]byte(operator), []byte(a.operator)) != 1 {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
