package auth

import "context"

// Authenticator defines the interface for operator authentication.
// This abstraction allows swapping the credential check (static password,
// external identity provider, etc.) without changing the service layer.
type Authenticator interface {
	// Authenticate verifies the operator's credential.
	// Returns ErrInvalidCredentials if it does not match.
	Authenticate(ctx context.Context, operator, credential string) error
}
