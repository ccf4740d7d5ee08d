package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/servicebook-backend/internal/adapter/events"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/booking"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/contact"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/invoice"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/payment"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/provider/sandbox"
	"github.com/heartmarshall/servicebook-backend/internal/auth"
	"github.com/heartmarshall/servicebook-backend/internal/config"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/internal/metrics"
	exposuresvc "github.com/heartmarshall/servicebook-backend/internal/service/exposure"
	paymentsvc "github.com/heartmarshall/servicebook-backend/internal/service/payment"
	profilesvc "github.com/heartmarshall/servicebook-backend/internal/service/profile"
	"github.com/heartmarshall/servicebook-backend/internal/transport/rest"
)

type eventPublisher interface {
	Publish(ctx context.Context, msgs ...domain.Message) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) NATS, and serves the REST API until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	checks := []rest.Check{{Name: "database", Pinger: pool}}

	var publisher eventPublisher = events.Nop{}
	if cfg.Events.Enabled {
		nats, err := events.Connect(cfg.Events, logger)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer func() {
			if err := nats.Close(); err != nil {
				logger.Warn("close events", slog.String("error", err.Error()))
			}
		}()
		publisher = nats
		checks = append(checks, rest.Check{Name: "events", Pinger: nats, Optional: true})
	}

	m := metrics.New()

	txm := postgres.NewTxManager(pool)
	contacts := contact.New(pool)
	alerts := alert.New(pool)
	bookings := booking.New(pool)
	payments := payment.New(pool)
	invoices := invoice.New(pool)
	profiles := profile.New(pool)

	provider := sandbox.NewProvider(logger, sandbox.Mode(cfg.Payments.SandboxMode))

	exposure := exposuresvc.NewService(logger, cfg.Exposure, txm, contacts, alerts, bookings, publisher, m)
	paymentSvc := paymentsvc.NewService(logger, cfg.Payments, txm, bookings, payments, invoices, audit.New(pool), provider, publisher, m)
	profileSvc := profilesvc.NewService(logger, profiles)

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), checks...),
		Exposure: rest.NewExposureHandler(exposure, logger),
		Payment:  rest.NewPaymentHandler(paymentSvc, logger),
		Profile:  rest.NewProfileHandler(profileSvc, logger),
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return serve(ctx, cfg, logger, newServer(cfg, logger, handlers, jwt, m))
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, srv *server) error {
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if srv.limiter != nil {
		g.Go(func() error { return srv.limiter.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
