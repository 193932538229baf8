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

	"github.com/mmynk/jobledger/internal/auth"
	"github.com/mmynk/jobledger/internal/config"
	"github.com/mmynk/jobledger/internal/events"
	"github.com/mmynk/jobledger/internal/metrics"
	"github.com/mmynk/jobledger/internal/middleware"
	"github.com/mmynk/jobledger/internal/service"
	"github.com/mmynk/jobledger/internal/storage"
	"github.com/mmynk/jobledger/internal/storage/jsonfile"
	"github.com/mmynk/jobledger/internal/storage/sqlite"
	"github.com/mmynk/jobledger/pkg/logging"
	"github.com/mmynk/jobledger/pkg/proto/protoconnect"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := slog.Default()

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()

	publisher := openPublisher(cfg, logger)
	defer publisher.Close()

	m := metrics.New()
	ledgerSvc, err := service.NewLedgerService(ctx, store, logger,
		service.WithPublisher(publisher),
		service.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	// Logging sits inside auth so it sees the owner.
	interceptors := []connect.Interceptor{m.Interceptor()}

	mux := http.NewServeMux()
	if cfg.AuthEnabled() {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		authSvc := service.NewAuthService(
			auth.NewOwnerAuthenticator(cfg.OwnerName, cfg.OwnerPasswordHash),
			jwtManager,
			logger,
		)
		mux.Handle(protoconnect.NewAuthServiceHandler(authSvc,
			connect.WithInterceptors(m.Interceptor(), middleware.LoggingInterceptor(logger)),
		))

		interceptors = append(interceptors, middleware.RequireAuth(jwtManager))
		slog.Info("Authentication enabled", "owner", cfg.OwnerName, "token_ttl", cfg.TokenTTL)
	} else {
		slog.Warn("Authentication disabled: JWT_SECRET is not set")
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor(logger))
	mux.Handle(protoconnect.NewLedgerServiceHandler(ledgerSvc, connect.WithInterceptors(interceptors...)))

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting",
			"address", srv.Addr,
			"url", fmt.Sprintf("http://localhost%s", srv.Addr),
			"backend", cfg.Backend,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		store, err := jsonfile.Open(cfg.DocumentPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", cfg.Backend, "document", cfg.DocumentPath)
		return store, nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", cfg.Backend, "database", cfg.DBPath)
		return store, nil
	}
}

// openPublisher connects to the broker when AMQP_URL is set. A broker that
// cannot be reached disables events rather than the server.
func openPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if cfg.AMQPURL == "" {
		return events.Nop{}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Warn("Change events disabled", "error", err)
		return events.Nop{}
	}
	logger.Info("Publishing change events", "exchange", cfg.AMQPExchange)
	return p
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
