package job

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/qw4990/SynthDataGen/datagen"
	"github.com/qw4990/SynthDataGen/export"
	"github.com/qw4990/SynthDataGen/source"
)

const (
	ModeSynthesize = "synthesize"
	ModeResample   = "resample"
)

// Duration decodes toml strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return errors.Trace(err)
}

// TextGeneratorOption points string columns at a text-generation endpoint.
type TextGeneratorOption struct {
	URL          string   `toml:"url"`
	Timeout      Duration `toml:"timeout"`
	Attempts     int      `toml:"attempts"`
	Backoff      Duration `toml:"backoff"`
	MaxNewTokens int      `toml:"max-new-tokens"`
}

// Job is one generation request.
type Job struct {
	Mode      string `toml:"mode"`
	Rows      int    `toml:"rows"`
	Seed      int64  `toml:"seed"`
	Topic     string `toml:"topic"`
	Output    string `toml:"output"`
	Compress  string `toml:"compress"`
	ReportDir string `toml:"report-dir"`
	Progress  bool   `toml:"progress"`

	// synthesize
	Columns       datagen.Schema      `toml:"columns"`
	MaxAttempts   int                 `toml:"max-attempts"`
	TextGenerator TextGeneratorOption `toml:"text-generator"`

	// resample
	Source  source.Option `toml:"source"`
	Replace bool          `toml:"replace"`
}

// DecodeJob decodes job content.
func DecodeJob(content string) (Job, error) {
	var j Job
	if _, err := toml.Decode(content, &j); err != nil {
		return Job{}, errors.Annotate(datagen.ErrInvalidInput, err.Error())
	}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}

// LoadJob decodes the job file at path.
func LoadJob(path string) (Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Job{}, errors.Trace(err)
	}
	return DecodeJob(string(content))
}

// Validate checks the job can run; it lowercases Mode.
func (j *Job) Validate() error {
	j.Mode = strings.ToLower(strings.TrimSpace(j.Mode))
	if j.Rows < 1 {
		return errors.Annotatef(datagen.ErrInvalidInput, "rows=%v must be at least 1", j.Rows)
	}
	if _, err := export.ParseCompression(j.Compress); err != nil {
		return errors.Annotate(datagen.ErrInvalidInput, err.Error())
	}
	switch j.Mode {
	case ModeSynthesize:
		return j.Columns.Validate()
	case ModeResample:
		if j.Source.CSV == "" && !j.Source.IsSQL() {
			return errors.Annotate(datagen.ErrInvalidInput, "resample needs a source csv file or database query")
		}
		if j.Source.IsSQL() && j.Source.Query == "" {
			return errors.Annotate(datagen.ErrInvalidInput, "resample from a database needs a query")
		}
		return nil
	}
	return errors.Annotatef(datagen.ErrInvalidInput, "unknown mode=%v", j.Mode)
}

// OutputPath is Output, or the default file name of the job's mode.
func (j *Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	if j.Mode == ModeResample {
		return datagen.ResampledFileName
	}
	return datagen.SynthesizedFileName(j.Topic)
}
