package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/memory"
)

// setupAuthTestServer serves both services with mutations behind JWT auth.
func setupAuthTestServer(t *testing.T) (*AuthClient, *LedgerClient, func()) {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	jwtManager := auth.NewJWTManager("test-secret-key-0123456789abcdef", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authSvc := NewAuthService(auth.NewPasswordAuthenticator("treasurer", hash), jwtManager, logger)
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.RequireAuth(jwtManager, IsMutation),
	)

	authPath, authHandler := NewAuthServiceHandler(authSvc)
	ledgerPath, ledgerHandler := NewLedgerServiceHandler(NewLedgerService(memory.New()), interceptors)

	mux := http.NewServeMux()
	mux.Handle(authPath, authHandler)
	mux.Handle(ledgerPath, ledgerHandler)
	server := httptest.NewServer(mux)

	cleanup := func() {
		server.Close()
	}

	return NewAuthClient(http.DefaultClient, server.URL), NewLedgerClient(http.DefaultClient, server.URL), cleanup
}

func TestLogin(t *testing.T) {
	authClient, _, cleanup := setupAuthTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := authClient.Login(ctx, connect.NewRequest(&LoginRequest{Operator: "treasurer", Password: "correct horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.Token == "" {
		t.Error("expected non-empty token")
	}

	_, err = authClient.Login(ctx, connect.NewRequest(&LoginRequest{Operator: "treasurer", Password: "wrong password"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = authClient.Login(ctx, connect.NewRequest(&LoginRequest{Operator: "treasurer"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestMutationsRequireToken(t *testing.T) {
	authClient, ledgerClient, cleanup := setupAuthTestServer(t)
	defer cleanup()
	ctx := context.Background()

	_, err := ledgerClient.AddGroup(ctx, connect.NewRequest(&AddGroupRequest{Name: "locked"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	req := connect.NewRequest(&AddGroupRequest{Name: "locked"})
	req.Header().Set("Authorization", "Bearer not-a-token")
	_, err = ledgerClient.AddGroup(ctx, req)
	assertCode(t, err, connect.CodeUnauthenticated)

	// Queries stay open.
	if _, err := ledgerClient.ListGroups(ctx, connect.NewRequest(&ListGroupsRequest{})); err != nil {
		t.Fatalf("ListGroups without token failed: %v", err)
	}

	loginResp, err := authClient.Login(ctx, connect.NewRequest(&LoginRequest{Operator: "treasurer", Password: "correct horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	req = connect.NewRequest(&AddGroupRequest{Name: "locked"})
	req.Header().Set("Authorization", "Bearer "+loginResp.Msg.Token)
	if _, err := ledgerClient.AddGroup(ctx, req); err != nil {
		t.Fatalf("AddGroup with token failed: %v", err)
	}

	listResp, err := ledgerClient.ListGroups(ctx, connect.NewRequest(&ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(listResp.Msg.Groups) != 1 || listResp.Msg.Groups[0] != "locked" {
		t.Errorf("groups = %v, want [locked]", listResp.Msg.Groups)
	}
}
