package datagen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// DefaultTopic is used in prompts when no topic is given.
const DefaultTopic = "Sample Topic"

// Synthesizer generates tables from a Schema.
type Synthesizer struct {
	// Rand is the source of all randomness; a time-seeded one is used if nil.
	Rand *rand.Rand
	// Text, if set, generates the values of string columns.
	Text TextGenerator
	// Topic is the subject string columns are prompted with.
	Topic string
	// MaxAttempts bounds the retries spent on one unique value, DefaultMaxAttempts if 0.
	MaxAttempts int
	// Progress is called after each column with the number of values generated.
	Progress func(n int)
}

// Synthesize generates numRows rows holding one column per ColumnSpec, in schema order.
// Either every column is generated or an error is returned and no table.
func (s *Synthesizer) Synthesize(ctx context.Context, schema Schema, numRows int) (dataframe.DataFrame, error) {
	if numRows < 1 {
		return dataframe.DataFrame{}, errors.Annotatef(ErrInvalidInput, "num-rows=%v must be at least 1", numRows)
	}
	if err := schema.Validate(); err != nil {
		return dataframe.DataFrame{}, err
	}
	rng := s.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	cols := make([]series.Series, 0, len(schema))
	for _, col := range schema {
		if err := ctx.Err(); err != nil {
			return dataframe.DataFrame{}, errors.Trace(err)
		}
		gen, err := s.generatorFor(col)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		vals, err := gen.Generate(ctx, numRows, col.Unique, rng)
		if err != nil {
			return dataframe.DataFrame{}, errors.Annotatef(err, "column %v", col.Name)
		}
		vals.Name = col.Name
		cols = append(cols, vals)
		zap.L().Debug("column generated",
			zap.String("column", col.Name),
			zap.Stringer("type", col.Type),
			zap.Bool("unique", col.Unique),
			zap.Int("rows", numRows))
		if s.Progress != nil {
			s.Progress(numRows)
		}
	}

	// New suffixes repeated names; the header keeps the declared ones.
	df := dataframe.New(cols...)
	if err := df.SetNames(schema.Names()...); err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	return df, nil
}

func (s *Synthesizer) generatorFor(col ColumnSpec) (ColumnGenerator, error) {
	switch col.Type {
	case TypeInteger:
		return intGenerator{}, nil
	case TypeFloat:
		return floatGenerator{maxAttempts: s.MaxAttempts}, nil
	case TypeString:
		return stringGenerator{
			text:        s.Text,
			prompt:      s.prompt(col),
			maxAttempts: s.MaxAttempts,
		}, nil
	case TypeCategory:
		return categoryGenerator{}, nil
	}
	return nil, errors.Annotatef(ErrInvalidInput, "unknown column type=%d", int(col.Type))
}

func (s *Synthesizer) prompt(col ColumnSpec) string {
	topic := s.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	return fmt.Sprintf("Write one realistic value for the column %q of a dataset about %s.", col.Name, topic)
}
