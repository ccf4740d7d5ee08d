// Command purge deletes contact and exposure data past its retention window.
// It is intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Usage:
//
//	purge privacy [--contact-days=15] [--alert-days=15]
//	purge expired-alerts [--grace-days=30]
//
// Defaults come from the retention section of the configuration.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/servicebook-backend/internal/adapter/postgres/contact"
	"github.com/heartmarshall/servicebook-backend/internal/app"
	"github.com/heartmarshall/servicebook-backend/internal/config"
	"github.com/heartmarshall/servicebook-backend/internal/metrics"
	"github.com/heartmarshall/servicebook-backend/internal/service/retention"
)

const runTimeout = 5 * time.Minute

func main() {
	rootCmd := &cobra.Command{
		Use:           "purge",
		Short:         "Delete contact and exposure data past retention",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(privacyCmd(), expiredAlertsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withService loads configuration, connects to the database and hands a
// retention service to fn.
func withService(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, svc *retention.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := retention.NewService(logger, postgres.NewTxManager(pool), contact.New(pool), alert.New(pool), metrics.New())
	return fn(ctx, cfg, svc)
}

func privacyCmd() *cobra.Command {
	var contactDays, alertDays int

	cmd := &cobra.Command{
		Use:   "privacy",
		Short: "Delete contacts and alerts older than their retention windows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(ctx context.Context, cfg *config.Config, svc *retention.Service) error {
				if !cmd.Flags().Changed("contact-days") {
					contactDays = cfg.Retention.ContactDays
				}
				if !cmd.Flags().Changed("alert-days") {
					alertDays = cfg.Retention.AlertDays
				}

				if _, err := svc.Purge(ctx, retention.Days(contactDays), retention.Days(alertDays)); err != nil {
					return fmt.Errorf("privacy purge: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&contactDays, "contact-days", 0, "delete contacts older than this many days (default from config)")
	cmd.Flags().IntVar(&alertDays, "alert-days", 0, "delete alerts older than this many days (default from config)")
	return cmd
}

func expiredAlertsCmd() *cobra.Command {
	var graceDays int

	cmd := &cobra.Command{
		Use:   "expired-alerts",
		Short: "Delete alerts that expired more than the grace period ago",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(ctx context.Context, cfg *config.Config, svc *retention.Service) error {
				if !cmd.Flags().Changed("grace-days") {
					graceDays = cfg.Retention.ExpiredAlertGraceDays
				}

				if _, err := svc.ClearExpiredAlerts(ctx, retention.Days(graceDays)); err != nil {
					return fmt.Errorf("clear expired alerts: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&graceDays, "grace-days", 0, "delete alerts expired longer than this many days (default from config)")
	return cmd
}
