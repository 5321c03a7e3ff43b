package datagen

import (
	"math/rand"

	"github.com/go-gota/gota/dataframe"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Resample draws n rows from source in random order.
// Without replacement the draw is clamped to the number of source rows.
func Resample(source dataframe.DataFrame, n int, withReplacement bool, rng *rand.Rand) (dataframe.DataFrame, error) {
	if source.Err != nil {
		return dataframe.DataFrame{}, errors.Trace(source.Err)
	}
	if n < 1 {
		return dataframe.DataFrame{}, errors.Annotatef(ErrInvalidInput, "n=%v must be at least 1", n)
	}
	nrow := source.Nrow()
	if nrow == 0 {
		return dataframe.DataFrame{}, errors.Annotate(ErrInvalidInput, "source table has no rows")
	}
	if rng == nil {
		rng = NewRand(0)
	}

	var idx []int
	if withReplacement {
		idx = make([]int, n)
		for i := range idx {
			idx[i] = rng.Intn(nrow)
		}
	} else {
		if n > nrow {
			zap.L().Warn("sample size clamped to source rows", zap.Int("n", n), zap.Int("rows", nrow))
			n = nrow
		}
		idx = rng.Perm(nrow)[:n]
	}

	df := source.Subset(idx)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Trace(df.Err)
	}
	return df, nil
}
