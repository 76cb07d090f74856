package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toxmanager/internal/cli"
	"toxmanager/internal/core/version"
	"toxmanager/internal/platform/config"
	"toxmanager/internal/platform/logger"
)

func main() {
	_ = config.Load()
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	logger.Init(opt)

	rootCmd := &cobra.Command{
		Use:     "toxmanager",
		Short:   "ToxManager - roster and exam lottery tools",
		Version: version.Info().Version,
		Long: `toxmanager works on the built-in demo roster without a server.
Use it to page through the roster or run a reproducible exam lottery.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.RosterCmd())
	rootCmd.AddCommand(cli.DrawCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
