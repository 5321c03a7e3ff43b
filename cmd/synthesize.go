package cmd

import (
	"time"

	"github.com/qw4990/SynthDataGen/datagen"
	"github.com/qw4990/SynthDataGen/job"
	"github.com/spf13/cobra"
)

func newSynthesizeCmd() *cobra.Command {
	var j job.Job
	var columns string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "synthesize --columns id:integer:unique,grp:category [--rows 10] [-o out.csv]",
		Short: "Generate a table from column declarations",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := datagen.ParseSchema(columns)
			if err != nil {
				return err
			}
			j.Mode = job.ModeSynthesize
			j.Columns = schema
			j.TextGenerator.Timeout.Duration = timeout
			return runJob(cmd, j)
		},
	}
	cmd.Flags().StringVarP(&columns, "columns", "c", "", "Columns as name:type[:unique], types are integer, float, string and category")
	cmd.Flags().StringVar(&j.Topic, "topic", datagen.DefaultTopic, "Topic the data is about")
	cmd.Flags().IntVar(&j.MaxAttempts, "max-attempts", datagen.DefaultMaxAttempts, "Draws spent looking for one novel value of a unique column")
	cmd.Flags().StringVar(&j.TextGenerator.URL, "text-url", "", "Text generation endpoint for string columns")
	cmd.Flags().DurationVar(&timeout, "text-timeout", 30*time.Second, "Timeout of one text generation call")
	cmd.Flags().IntVar(&j.TextGenerator.Attempts, "text-attempts", 3, "Tries per text generation call")
	cmd.Flags().IntVar(&j.TextGenerator.MaxNewTokens, "text-max-tokens", 0, "Token limit of a generated value")
	cmd.Flags().BoolVar(&j.Progress, "progress", false, "Show a progress bar")
	addCommonFlags(cmd, &j)
	cmd.MarkFlagRequired("columns")
	return cmd
}
