package cmd

import (
	"github.com/qw4990/SynthDataGen/job"
	"github.com/spf13/cobra"
)

func newResampleCmd() *cobra.Command {
	var j job.Job
	cmd := &cobra.Command{
		Use:   "resample [--csv in.csv | --driver mysql --dsn \"root@tcp(127.0.0.1:4000)/test\" --query \"select * from t\"] [-n 10]",
		Short: "Draw rows from an existing table",
		RunE: func(cmd *cobra.Command, args []string) error {
			j.Mode = job.ModeResample
			return runJob(cmd, j)
		},
	}
	cmd.Flags().StringVar(&j.Source.CSV, "csv", "", "Source CSV file with a header row")
	cmd.Flags().StringVar(&j.Source.Driver, "driver", "", "Source database driver: mysql, sqlite3 or postgres")
	cmd.Flags().StringVar(&j.Source.DSN, "dsn", "", "Source database DSN")
	cmd.Flags().StringVar(&j.Source.Query, "query", "", "Query returning the source table")
	cmd.Flags().BoolVar(&j.Replace, "replace", false, "Sample with replacement")
	addCommonFlags(cmd, &j)
	return cmd
}
