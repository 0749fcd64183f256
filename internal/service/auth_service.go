package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
)

const (
	// AuthServiceName is the fully-qualified name of the auth service.
	AuthServiceName = "splitledger.v1.AuthService"

	LoginProcedure = "/" + AuthServiceName + "/Login"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// NewAuthServiceHandler builds an HTTP handler for the AuthService.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LoginProcedure, connect.NewUnaryHandler(LoginProcedure, svc.Login, opts...))
	return "/" + AuthServiceName + "/", mux
}

// Login authenticates the operator and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	logger := s.logger.With("request_id", middleware.GetRequestID(ctx))
	logger.Info("Login request", "operator", req.Msg.Operator)

	if req.Msg.Operator == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Operator, req.Msg.Password); err != nil {
		logger.Warn("Login failed", "operator", req.Msg.Operator, "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(req.Msg.Operator)
	if err != nil {
		logger.Error("Failed to generate token", "operator", req.Msg.Operator, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	logger.Info("Operator logged in", "operator", req.Msg.Operator)
	return connect.NewResponse(&LoginResponse{Token: token}), nil
}
