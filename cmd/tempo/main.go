package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tempo/internal/cli"
	"github.com/example/tempo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tempo",
		Short:   "Personal time tracking utility",
		Version: version.String(),
		Long: `tempo records missions - named units of work with a start and an
optional end. At most one mission runs at a time; starting a new one
stops the previous mission.`,
	}

	rootCmd.AddCommand(cli.StartCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.StopCmd())
	rootCmd.AddCommand(cli.ResumeCmd())
	rootCmd.AddCommand(cli.LsCmd())
	rootCmd.AddCommand(cli.InfoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
