package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toxmanager/internal/core/lottery"
	"toxmanager/internal/store"
)

// DrawCmd returns the draw command
func DrawCmd() *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw employees from the demo roster for a toxicology exam",
		Long: `Pick employees uniformly at random, without repetition, from the
active part of the demo roster. A non-zero --seed makes the draw reproducible.`,
		Example: `  toxmanager draw --count 3
  toxmanager draw --count 5 --seed 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			src := lottery.Default
			if seed != 0 {
				src = lottery.NewSeeded(seed)
			}

			records := store.SeedRoster()
			pool := lottery.CountEligible(records)
			if pool == 0 {
				return fmt.Errorf("no active employees to draw from")
			}
			picks := lottery.Sample(records, count, src)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d of %d eligible employees drawn\n\n", len(picks), pool)
			tw := table(out)
			row(tw, "#", "MAT", "NOME", "DEPARTAMENTO", "STATUS")
			for i, e := range picks {
				row(tw, i+1, e.RegistrationNumber, e.Name, e.Department, statusLabel(e.Status))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(picks) < count {
				fmt.Fprintf(out, "\nrequested %d, only %d eligible\n", count, pool)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "How many employees to draw")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible draw, 0 is random")

	return cmd
}
