package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/service"
	"github.com/mmynk/splitledger/internal/storage/memory"
	"github.com/mmynk/splitledger/pkg/logging"
)

func main() {
	// Load reads .env, which may set LOG_LEVEL and LOG_FORMAT.
	cfg := config.Load()
	logging.Setup()

	// `server hash-password <password>` prints a value for LEDGER_OPERATOR_PASSWORD_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := auth.HashPassword(os.Args[2])
		if err != nil {
			slog.Error("Failed to hash password", "error", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store := memory.New()
	m := metrics.New(store.Stats)

	interceptors := []connect.Interceptor{
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(m),
	}

	mux := http.NewServeMux()

	if cfg.AuthEnabled() {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, service.IsMutation))

		authSvc := service.NewAuthService(
			auth.NewPasswordAuthenticator(cfg.Operator, cfg.OperatorPasswordHash),
			jwtManager,
			slog.Default().With("component", "auth"),
		)
		authPath, authHandler := service.NewAuthServiceHandler(authSvc,
			connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m)),
		)
		mux.Handle(authPath, authHandler)
		slog.Info("Auth enabled for mutating procedures", "operator", cfg.Operator)
	} else {
		slog.Warn("LEDGER_JWT_SECRET not set; mutating procedures are open")
	}

	ledgerSvc := service.NewLedgerService(store).WithRecentLimit(cfg.RecentLimit)
	ledgerPath, ledgerHandler := service.NewLedgerServiceHandler(ledgerSvc, connect.WithInterceptors(interceptors...))
	mux.Handle(ledgerPath, ledgerHandler)
	mux.Handle(cfg.MetricsPath, m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
