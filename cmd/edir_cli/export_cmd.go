package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/utils/export"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	Format string
	Out    string
}

func newExportCmd(root *rootOptions) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export --format csv|xlsx --out <file>",
		Short: "Export every employee with bilingual department labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := export.Format(opts.Format)
			if format != export.FormatCSV && format != export.FormatXLSX {
				return fmt.Errorf("--format must be csv or xlsx, got %q", opts.Format)
			}
			if opts.Out == "" {
				return errors.New("--out is required")
			}

			return withServices(cmd.Context(), root, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				if err := svc.Employees.Refresh(ctx); err != nil {
					return err
				}
				employees, err := svc.Employees.Query(domain.DefaultEmployeeQuery())
				if err != nil {
					return err
				}
				rows := export.Rows(employees, func(key string, lang domain.Language) string {
					return svc.Catalog.ResolveLabel(ctx, key, lang)
				})

				f, err := os.Create(opts.Out)
				if err != nil {
					return fmt.Errorf("create %s: %w", opts.Out, err)
				}
				write := export.WriteCSV
				if format == export.FormatXLSX {
					write = export.WriteXLSX
				}
				if err := write(f, rows); err != nil {
					_ = f.Close()
					return fmt.Errorf("write %s: %w", opts.Out, err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", opts.Out, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d employees to %s\n", len(rows), opts.Out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", string(export.FormatCSV), "csv or xlsx")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output file")
	return cmd
}
