package cmd

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/qw4990/SynthDataGen/job"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var conf string
	cmd := &cobra.Command{
		Use:   "run --config job.toml",
		Short: "Run a generation job file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if conf == "" {
				return errors.New("no config")
			}
			j, err := job.LoadJob(conf)
			if err != nil {
				return err
			}
			return runJob(cmd, j)
		},
	}
	cmd.Flags().StringVar(&conf, "config", "", "Job config path")
	return cmd
}

func addCommonFlags(cmd *cobra.Command, j *job.Job) {
	cmd.Flags().IntVarP(&j.Rows, "rows", "n", 10, "Number of rows to generate")
	cmd.Flags().Int64Var(&j.Seed, "seed", 0, "Random seed, 0 seeds from the clock")
	cmd.Flags().StringVarP(&j.Output, "output", "o", "", "Output CSV file, named after the topic by default")
	cmd.Flags().StringVar(&j.Compress, "compress", "", "Output compression: none or snappy")
	cmd.Flags().StringVar(&j.ReportDir, "report-dir", "", "Directory to write a preview report to")
}

func runJob(cmd *cobra.Command, j job.Job) error {
	res, err := job.Run(cmd.Context(), j)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d rows written to %s\n", res.Table.Nrow(), res.Output)
	if res.Report != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", res.Report)
	}
	return nil
}
