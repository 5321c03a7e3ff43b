package job

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"github.com/qw4990/SynthDataGen/datagen"
	"github.com/qw4990/SynthDataGen/export"
	"github.com/qw4990/SynthDataGen/report"
	"github.com/qw4990/SynthDataGen/source"
	"github.com/qw4990/SynthDataGen/textgen"
	"go.uber.org/zap"
)

// Result is what a finished job produced.
type Result struct {
	RequestID string
	Table     dataframe.DataFrame
	Output    string // the exported file
	Report    string // the report file, if one was asked for
}

// Run generates the job's table, exports it and writes its report.
// Nothing is written if generation fails.
func Run(ctx context.Context, j Job) (Result, error) {
	if err := j.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{RequestID: uuid.NewString()}
	logger := zap.L().With(zap.String("request-id", res.RequestID), zap.String("mode", j.Mode))
	begin := time.Now()

	rng := datagen.NewRand(j.Seed)
	var err error
	switch j.Mode {
	case ModeSynthesize:
		res.Table, err = synthesize(ctx, j, rng)
	case ModeResample:
		res.Table, err = resample(ctx, j, rng)
	}
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return Result{}, err
	}
	logger.Info("table generated",
		zap.Int("rows", res.Table.Nrow()),
		zap.Int("columns", res.Table.Ncol()),
		zap.Duration("cost", time.Since(begin)))

	compression, _ := export.ParseCompression(j.Compress)
	if res.Output, err = export.WriteFile(j.OutputPath(), res.Table, compression); err != nil {
		return Result{}, err
	}
	logger.Info("table exported", zap.String("file", res.Output))

	if j.ReportDir != "" {
		title := "Synthetic Data"
		if j.Mode == ModeSynthesize {
			title = "Synthetic Data for Topic: " + topicOrDefault(j.Topic)
		}
		res.Report, err = report.Generate(j.ReportDir, res.Table, report.Option{Title: title, RequestID: res.RequestID})
		if err != nil {
			return Result{}, err
		}
		logger.Info("report written", zap.String("file", res.Report))
	}
	return res, nil
}

func synthesize(ctx context.Context, j Job, rng *rand.Rand) (dataframe.DataFrame, error) {
	s := &datagen.Synthesizer{
		Rand:        rng,
		Topic:       j.Topic,
		MaxAttempts: j.MaxAttempts,
	}
	if tg := j.TextGenerator; tg.URL != "" {
		s.Text = textgen.WithRetry(textgen.NewTGIClient(tg.URL, tg.MaxNewTokens), textgen.RetryOption{
			Timeout:  tg.Timeout.Duration,
			Attempts: tg.Attempts,
			Backoff:  tg.Backoff.Duration,
		})
	}
	if j.Progress {
		bar := pb.New(j.Rows * len(j.Columns))
		bar.Output = os.Stderr
		bar.Start()
		defer bar.Finish()
		s.Progress = func(n int) { bar.Add(n) }
	}
	return s.Synthesize(ctx, j.Columns, j.Rows)
}

func resample(ctx context.Context, j Job, rng *rand.Rand) (dataframe.DataFrame, error) {
	src, err := source.Load(ctx, j.Source)
	if err != nil {
		return dataframe.DataFrame{}, errors.Annotate(err, "load source table")
	}
	return datagen.Resample(src, j.Rows, j.Replace, rng)
}

func topicOrDefault(topic string) string {
	if topic == "" {
		return datagen.DefaultTopic
	}
	return topic
}
