package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/dormshare/internal/auth"
	"github.com/mmynk/dormshare/internal/board"
	"github.com/mmynk/dormshare/internal/config"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/ledger"
	"github.com/mmynk/dormshare/internal/metrics"
	"github.com/mmynk/dormshare/internal/middleware"
	"github.com/mmynk/dormshare/internal/service"
	"github.com/mmynk/dormshare/internal/storage/sqlite"
	"github.com/mmynk/dormshare/pkg/api/apiconnect"
)

func serveCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := sqlite.New(cfg.Database.Path, sqlite.Options{BusyTimeout: cfg.Database.BusyTimeout})
			if err != nil {
				return err
			}
			defer store.Close()
			slog.Info("Storage initialized", "database", cfg.Database.Path)

			server := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           newHandler(cfg, store),
				ReadTimeout:       cfg.HTTP.ReadTimeout,
				ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
				WriteTimeout:      cfg.HTTP.WriteTimeout,
				IdleTimeout:       cfg.HTTP.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("Connect server starting", "address", cfg.HTTP.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			slog.Info("Stopping server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				slog.Error("Could not stop server", "error", err)
				return err
			}
			return nil
		},
	}
}

// newHandler wires the services, interceptors and HTTP middleware.
func newHandler(cfg *config.Config, store *sqlite.SQLiteStore) http.Handler {
	m := metrics.New(prometheus.DefaultRegisterer)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	authenticator := auth.NewPasswordAuthenticatorWithCost(store, cfg.Auth.BcryptCost)

	dir := household.NewDirectory(store)
	l := ledger.New(store,
		ledger.WithRemainderPolicy(cfg.RemainderPolicy()),
		ledger.WithRecorder(m),
	)
	b := board.New(store)

	// Auth runs first so the logging and metrics interceptors see the caller.
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager,
			apiconnect.AuthServiceRegisterProcedure,
			apiconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(m),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, dir, slog.Default()),
		interceptors,
	))
	mux.Handle(apiconnect.NewHouseholdServiceHandler(service.NewHouseholdService(dir, l, b), interceptors))
	mux.Handle(apiconnect.NewLedgerServiceHandler(service.NewLedgerService(dir, l), interceptors))
	mux.Handle(apiconnect.NewBoardServiceHandler(service.NewBoardService(dir, b), interceptors))
	mux.Handle(cfg.HTTP.MetricsPath, promhttp.Handler())

	handler := middleware.LogRequests(middleware.CORS(cfg.HTTP.CORSOrigin)(mux))

	// h2c serves HTTP/2 without TLS for Connect clients.
	return h2c.NewHandler(handler, &http2.Server{})
}
