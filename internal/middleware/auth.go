package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// OperatorKey is the context key for storing the authenticated operator.
	OperatorKey contextKey = "operator"
	// RequestIDKey is the context key for the per-call request ID.
	RequestIDKey contextKey = "request_id"
)

// GetOperator extracts the operator from the context.
// Returns empty string if not found.
func GetOperator(ctx context.Context) string {
	operator, _ := ctx.Value(OperatorKey).(string)
	return operator
}

// RequireAuth returns an interceptor that validates bearer JWTs on every
// procedure for which protected returns true. Other procedures pass through,
// picking up the operator only if a valid token happens to be present.
func RequireAuth(jwtManager *auth.JWTManager, protected func(procedure string) bool) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			claims, err := bearerClaims(jwtManager, req.Header().Get("Authorization"))
			if protected(req.Spec().Procedure) {
				if err != nil {
					return nil, connect.NewError(connect.CodeUnauthenticated, err)
				}
			} else if err != nil {
				return next(ctx, req)
			}

			ctx = context.WithValue(ctx, OperatorKey, claims.Operator)
			return next(ctx, req)
		}
	}
}

func bearerClaims(jwtManager *auth.JWTManager, header string) (*auth.Claims, error) {
	if header == "" {
		return nil, auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.Validate(parts[1])
}
