package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toxmanager/internal/core/roster"
	"toxmanager/internal/store"
)

// RosterCmd returns the roster command
func RosterCmd() *cobra.Command {
	var (
		query string
		sort  string
		page  int
		size  int
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print one page of the demo roster",
		Long: `Filter the demo roster by name, registration number or department,
sort it by name and print the requested page.`,
		Example: `  toxmanager roster --q produção
  toxmanager roster --sort desc --page 2 --size 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := roster.ParseDirection(sort)
			if err != nil {
				return err
			}
			if size < 1 {
				return fmt.Errorf("--size must be at least 1")
			}

			filtered := roster.Filter(store.SeedRoster(), query)
			p := roster.SortAndPage(filtered, dir, size, page)

			out := cmd.OutOrStdout()
			tw := table(out)
			row(tw, "MAT", "NOME", "DEPARTAMENTO", "STATUS", "ÚLTIMO EXAME")
			for _, e := range p.Items {
				row(tw, e.RegistrationNumber, e.Name, e.Department, statusLabel(e.Status), e.LastExamDate)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\npage %d of %d, %d employees\n", p.Page, p.TotalPages, p.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "q", "", "Search term")
	cmd.Flags().StringVar(&sort, "sort", "asc", "Name order: asc or desc")
	cmd.Flags().IntVar(&page, "page", 1, "Page number, clamped to the last page")
	cmd.Flags().IntVar(&size, "size", 10, "Rows per page")

	return cmd
}
