// Command migrate applies the embedded SQL migrations with goose.
//
// Usage:
//
//	migrate up | down | status
//
// Reads the same configuration as the server (CONFIG_PATH and environment).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/app"
	"github.com/heartmarshall/servicebook-backend/internal/config"
)

const runTimeout = 2 * time.Minute

func main() {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the servicebook database schema",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
					results, err := p.Up(ctx)
					for _, r := range results {
						fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
					}
					if err != nil {
						return fmt.Errorf("up: %w", err)
					}
					if len(results) == 0 {
						fmt.Println("no pending migrations")
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
					r, err := p.Down(ctx)
					if err != nil {
						return fmt.Errorf("down: %w", err)
					}
					fmt.Printf("rolled back %s\n", r.Source.Path)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return fmt.Errorf("status: %w", err)
					}
					for _, s := range statuses {
						applied := "-"
						if s.State == goose.StateApplied {
							applied = s.AppliedAt.Format(time.RFC3339)
						}
						fmt.Printf("%-8s %-40s %s\n", s.State, s.Source.Path, applied)
					}
					return nil
				})
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withProvider(ctx context.Context, fn func(ctx context.Context, p *goose.Provider) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	provider, db, err := postgres.OpenMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, provider)
}
