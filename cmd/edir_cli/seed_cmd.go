package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func newSeedDepartmentsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-departments",
		Short: "Write the built-in department table into the store, skipping names already present",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd.Context(), root, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				created, err := svc.Department.SeedDepartments(ctx, domain.StaticDepartments)
				if err != nil {
					return fmt.Errorf("seed departments (created %d before failing): %w", created, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d departments\n", created, len(domain.StaticDepartments))
				return nil
			})
		},
	}
}
