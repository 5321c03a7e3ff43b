package datagen_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/qw4990/SynthDataGen/datagen"
	"github.com/qw4990/SynthDataGen/export"
	"github.com/qw4990/SynthDataGen/source"
)

func validValue(tp datagen.ColumnType, v string) bool {
	switch tp {
	case datagen.TypeInteger:
		i, err := strconv.Atoi(v)
		return err == nil && i >= 0 && i < datagen.IntegerDomain
	case datagen.TypeFloat:
		f, err := strconv.ParseFloat(v, 64)
		return err == nil && f >= 0 && f < datagen.FloatUpperBound
	case datagen.TypeString:
		return v != ""
	case datagen.TypeCategory:
		for _, c := range datagen.Categories {
			if c == v {
				return true
			}
		}
	}
	return false
}

func TestProperty_SynthesizeShapeAndDomains(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("synthesized tables have the declared shape and domains", prop.ForAll(
		func(seed int64, rows int, types []int, uniques []bool) bool {
			schema := make(datagen.Schema, len(types))
			for i, tp := range types {
				col := datagen.ColumnSpec{Name: "c" + strconv.Itoa(i), Type: datagen.ColumnType(tp), Unique: uniques[i]}
				if col.Type == datagen.TypeCategory && rows > len(datagen.Categories) {
					col.Unique = false
				}
				schema[i] = col
			}
			s := &datagen.Synthesizer{Rand: datagen.NewRand(seed)}
			df, err := s.Synthesize(context.Background(), schema, rows)
			if err != nil || df.Nrow() != rows || df.Ncol() != len(schema) {
				return false
			}
			if strings.Join(df.Names(), ",") != strings.Join(schema.Names(), ",") {
				return false
			}
			var buf bytes.Buffer
			if err := export.WriteCSV(&buf, df); err != nil {
				return false
			}
			back, err := source.ReadCSV(&buf)
			if err != nil || back.Nrow() != rows {
				return false
			}
			for _, col := range schema {
				seen := make(map[string]bool)
				for _, v := range back.Col(col.Name).Records() {
					if !validValue(col.Type, v) {
						return false
					}
					if col.Unique && seen[v] {
						return false
					}
					seen[v] = true
				}
			}
			return true
		},
		gen.Int64Range(1, 1<<40),
		gen.IntRange(1, 100),
		gen.SliceOfN(4, gen.IntRange(0, 3)),
		gen.SliceOfN(4, gen.Bool()),
	))

	properties.Property("unique categories beyond the alphabet are exhausted", prop.ForAll(
		func(seed int64, rows int) bool {
			s := &datagen.Synthesizer{Rand: datagen.NewRand(seed)}
			_, err := s.Synthesize(context.Background(), datagen.Schema{{Name: "g", Type: datagen.TypeCategory, Unique: true}}, rows)
			return datagen.IsDomainExhausted(err)
		},
		gen.Int64Range(1, 1<<40),
		gen.IntRange(5, 1000),
	))

	properties.TestingRun(t)
}

func sourceTable(n int) dataframe.DataFrame {
	records := [][]string{{"x", "y"}}
	for i := 0; i < n; i++ {
		records = append(records, []string{strconv.Itoa(i), "row-" + strconv.Itoa(i)})
	}
	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
}

func TestProperty_Resample(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("resampled rows are source rows and respect the replacement policy", prop.ForAll(
		func(seed int64, srcRows, n int, replace bool) bool {
			src := sourceTable(srcRows)
			srcSet := make(map[string]bool)
			for _, r := range src.Records()[1:] {
				srcSet[strings.Join(r, "\x00")] = true
			}
			out, err := datagen.Resample(src, n, replace, datagen.NewRand(seed))
			if err != nil {
				return false
			}
			want := n
			if !replace && n > srcRows {
				want = srcRows
			}
			if out.Nrow() != want || out.Ncol() != src.Ncol() {
				return false
			}
			seen := make(map[string]bool)
			for _, r := range out.Records()[1:] {
				key := strings.Join(r, "\x00")
				if !srcSet[key] {
					return false
				}
				if !replace && seen[key] {
					return false
				}
				seen[key] = true
			}
			return true
		},
		gen.Int64Range(1, 1<<40),
		gen.IntRange(1, 50),
		gen.IntRange(1, 80),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
