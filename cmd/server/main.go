package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	specpkg "github.com/jkmfoundation/site-api/api"
	"github.com/jkmfoundation/site-api/internal/api"
	"github.com/jkmfoundation/site-api/internal/config"
	"github.com/jkmfoundation/site-api/internal/contact"
	"github.com/jkmfoundation/site-api/internal/donation"
	"github.com/jkmfoundation/site-api/internal/golf"
	"github.com/jkmfoundation/site-api/internal/marathon"
	"github.com/jkmfoundation/site-api/internal/migrations"
	"github.com/jkmfoundation/site-api/internal/newsletter"
	"github.com/jkmfoundation/site-api/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	pool, err := initDatabase(cfg)
	if err != nil {
		slog.Error("database initialization failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	dispatcher := notify.NewDispatcher(
		notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}),
		notify.PaymentLinks{
			Team:       cfg.PaymentLinkTeam,
			Individual: cfg.PaymentLinkIndividual,
		},
		cfg.MailFrom,
		cfg.AdminEmail,
	)

	deps := api.RouterDeps{
		DBPinger:      pool,
		Version:       cfg.Version,
		OpenAPISpec:   specpkg.OpenAPISpec,
		Golf:          golf.NewService(golf.NewTeamRepository(pool), golf.NewParticipantRepository(pool), dispatcher),
		Contact:       contact.NewService(contact.NewRepository(pool), dispatcher),
		Newsletter:    newsletter.NewService(newsletter.NewRepository(pool), dispatcher),
		Marathon:      marathon.NewService(marathon.NewRepository(pool), dispatcher),
		StaticDir:     cfg.StaticDir,
		AllowedOrigin: cfg.AllowedOrigin,
		ForceHTTPS:    cfg.IsProduction(),
	}

	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()

	if cfg.StripeSecretKey != "" {
		donations := donation.NewService(donation.NewStripeCharges(cfg.StripeSecretKey))
		if cfg.DonationRefresh > 0 {
			poller := donation.NewPoller(donations, cfg.DonationRefresh)
			go func() {
				if err := poller.Start(pollCtx); err != nil {
					slog.Error("donation poller failed to start", "error", err)
				}
			}()
			deps.Donations = poller
		} else {
			deps.Donations = donations
		}
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set; donation total endpoint disabled")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting site server", "port", cfg.Port, "version", cfg.Version, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		pool.Close()
		os.Exit(1)
	}

	stopPolling()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// Let queued confirmation and payment emails finish before the pool closes.
	dispatcher.Wait()

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func initDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := migrations.Up(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info("database migrations applied")
	}

	return pool, nil
}
