package cli

import (
	"fmt"
	"os"

	"github.com/crewdeck-dev/crewdeck/internal/export"
	"github.com/crewdeck-dev/crewdeck/pkg/client"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ExportCmd fetches an entity listing over the API and writes it out as CSV
// (or JSON with --json), standing in for the browser's download button.
func ExportCmd() *cobra.Command {
	var (
		url      string
		username string
		password string
		output   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:       "export {jobs|operatives|risk-assessments|method-statements}",
		Short:     "Export an entity listing to CSV or JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"jobs", "operatives", "risk-assessments", "method-statements"},
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(url)

			if _, err := api.Login(username, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			var (
				data    interface{}
				columns []export.Column
				count   int
			)

			switch args[0] {
			case "jobs":
				jobs, err := api.ListJobs()
				if err != nil {
					return err
				}
				data, columns, count = jobs, export.JobColumns, len(jobs)
			case "operatives":
				operatives, err := api.ListOperatives()
				if err != nil {
					return err
				}
				data, columns, count = operatives, export.OperativeColumns, len(operatives)
			case "risk-assessments":
				assessments, err := api.ListRiskAssessments()
				if err != nil {
					return err
				}
				data, columns, count = assessments, export.RiskAssessmentColumns, len(assessments)
			case "method-statements":
				statements, err := api.ListMethodStatements()
				if err != nil {
					return err
				}
				data, columns, count = statements, export.MethodStatementColumns, len(statements)
			default:
				return fmt.Errorf("unknown entity %q", args[0])
			}

			var rendered string

			if asJSON {
				out, err := export.ToJSON(data)
				if err != nil {
					return err
				}
				rendered = out
			} else {
				rows, err := export.Rows(data)
				if err != nil {
					return err
				}
				rendered = export.ToCSV(rows, columns)
			}

			if output == "" {
				fmt.Println(rendered)
				return nil
			}

			if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
				return err
			}

			fmt.Printf("%s exported %d rows to %s\n", color.New(color.FgGreen).Sprint("OK"), count, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:3000", "base URL of the crewdeck server")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username to log in with")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password to log in with")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write; stdout when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "export as JSON instead of CSV")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}
