package main

import (
	"fmt"
	"os"

	"github.com/crewdeck-dev/crewdeck/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crewdeck",
		Short: "Crewdeck - job tracking dashboard for field-services teams",
		Long: `Crewdeck tracks field operatives, jobs, risk assessments, method
statements and job progress behind a token-authenticated REST API.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.CreateUserCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
