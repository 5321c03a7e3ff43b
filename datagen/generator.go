package datagen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-gota/gota/series"
	"github.com/pingcap/errors"
)

// DefaultMaxAttempts bounds the draws spent looking for one novel value of a unique column.
const DefaultMaxAttempts = 100

// TextGenerator is the external text-generation collaborator used by string columns.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ColumnGenerator produces the values of one column.
type ColumnGenerator interface {
	// Generate returns n values, pairwise distinct if unique is set.
	Generate(ctx context.Context, n int, unique bool, rng *rand.Rand) (series.Series, error)
}

type intGenerator struct{}

func (intGenerator) Generate(_ context.Context, n int, unique bool, rng *rand.Rand) (series.Series, error) {
	vals := make([]int, n)
	if unique {
		if n > IntegerDomain {
			return series.Series{}, errors.Annotatef(ErrDomainExhausted,
				"%d unique integers requested but only %d exist", n, IntegerDomain)
		}
		copy(vals, rng.Perm(IntegerDomain)[:n])
	} else {
		for i := range vals {
			vals[i] = rng.Intn(IntegerDomain)
		}
	}
	return series.Ints(vals), nil
}

type floatGenerator struct {
	maxAttempts int
}

func (g floatGenerator) Generate(_ context.Context, n int, unique bool, rng *rand.Rand) (series.Series, error) {
	vals, err := drawValues(n, unique, g.maxAttempts, func(int) (float64, error) {
		return rng.Float64() * FloatUpperBound, nil
	})
	if err != nil {
		return series.Series{}, err
	}
	return series.Floats(vals), nil
}

type categoryGenerator struct{}

func (categoryGenerator) Generate(_ context.Context, n int, unique bool, rng *rand.Rand) (series.Series, error) {
	vals := make([]string, n)
	if unique {
		if n > len(Categories) {
			return series.Series{}, errors.Annotatef(ErrDomainExhausted,
				"%d unique categories requested but only %d exist", n, len(Categories))
		}
		for i, idx := range rng.Perm(len(Categories))[:n] {
			vals[i] = Categories[idx]
		}
	} else {
		for i := range vals {
			vals[i] = Categories[rng.Intn(len(Categories))]
		}
	}
	return series.Strings(vals), nil
}

// stringGenerator emits "Sample_Text_<i>" placeholders, or asks text for a
// value per row when a collaborator is wired in.
type stringGenerator struct {
	text        TextGenerator
	prompt      string
	maxAttempts int
}

func (g stringGenerator) Generate(ctx context.Context, n int, unique bool, _ *rand.Rand) (series.Series, error) {
	if g.text == nil {
		vals := make([]string, n)
		for i := range vals {
			vals[i] = fmt.Sprintf("Sample_Text_%d", i)
		}
		return series.Strings(vals), nil
	}
	vals, err := drawValues(n, unique, g.maxAttempts, func(int) (string, error) {
		s, err := g.text.Generate(ctx, g.prompt)
		if err != nil {
			return "", errors.Annotatef(ErrCollaboratorFailure, "prompt=%q: %v", g.prompt, err)
		}
		if s == "" {
			return "", errors.Annotatef(ErrCollaboratorFailure, "prompt=%q: empty output", g.prompt)
		}
		return s, nil
	})
	if err != nil {
		return series.Series{}, err
	}
	return series.Strings(vals), nil
}

// drawValues calls draw until it has n values. With unique set, repeated values
// are discarded and each value may take at most maxAttempts draws.
func drawValues[T comparable](n int, unique bool, maxAttempts int, draw func(i int) (T, error)) ([]T, error) {
	vals := make([]T, 0, n)
	if !unique {
		for i := 0; i < n; i++ {
			v, err := draw(i)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		return vals, nil
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	seen := make(map[T]struct{}, n)
	for i := 0; i < n; i++ {
		found := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			v, err := draw(i)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vals = append(vals, v)
			found = true
			break
		}
		if !found {
			return nil, errors.Annotatef(ErrDomainExhausted,
				"no novel value for row %d after %d attempts", i, maxAttempts)
		}
	}
	return vals, nil
}
