package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/spf13/cobra"
)

type listOptions struct {
	Department string
	Search     string
	Sort       string
	Lang       string
}

func newListCmd(root *rootOptions) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list [--department <key>] [--search <text>] [--sort name|age|experience|department]",
		Short: "Print employees with their resolved department label",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd.Context(), root, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				if err := svc.Employees.Refresh(ctx); err != nil {
					return err
				}
				svc.Employees.SetDepartmentFilter(opts.Department)
				svc.Employees.SetSearchTerm(opts.Search)
				if err := svc.Employees.SetSortKey(domain.SortKey(opts.Sort)); err != nil {
					return err
				}

				visible, err := svc.Employees.Visible()
				if err != nil {
					return err
				}
				stats, err := svc.Employees.Stats()
				if err != nil {
					return err
				}

				lang := domain.ParseLanguage(opts.Lang)
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tAGE\tEXPERIENCE\tDEPARTMENT\tSENIORITY")
				for _, e := range visible {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.Name, optional(e.Age), optional(e.Experience),
						svc.Catalog.ResolveLabel(ctx, e.Department, lang),
						domain.SeniorityFor(e.ExperienceOrZero()))
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d shown, %d total, average age %.1f, average experience %.1f\n",
					len(visible), stats.Count, stats.AverageAge, stats.AverageExperience)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Department, "department", domain.AllDepartmentsKey, "department key")
	cmd.Flags().StringVar(&opts.Search, "search", "", "case-insensitive name substring")
	cmd.Flags().StringVar(&opts.Sort, "sort", string(domain.DefaultSortKey), "sort key")
	cmd.Flags().StringVar(&opts.Lang, "lang", string(domain.LanguageEnglish), "label language, en or ar")
	return cmd
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
