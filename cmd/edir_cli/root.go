package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/core/services"
	"github.com/SscSPs/employee_directory_app/internal/platform/config"
	"github.com/SscSPs/employee_directory_app/internal/repositories/database"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	Migrate bool
	Verbose bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "edir_cli",
		Short:         "Operator tool for the employee directory record store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.Migrate, "migrate", false, "apply pending postgres migrations first")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newSeedDepartmentsCmd(&opts))
	cmd.AddCommand(newExportCmd(&opts))
	cmd.AddCommand(newListCmd(&opts))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// withServices opens the configured store, builds the services and runs fn.
func withServices(ctx context.Context, opts *rootOptions, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	repos, closeStore, err := database.OpenStore(ctx, cfg, logger, opts.Migrate)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer closeStore()

	return fn(ctx, services.NewServiceContainer(cfg, repos))
}
