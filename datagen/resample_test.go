package datagen_test

import (
	"sort"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/qw4990/SynthDataGen/datagen"
	"github.com/stretchr/testify/require"
)

func xTable() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{{"x"}, {"1"}, {"2"}, {"3"}},
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
}

func TestResampleWithReplacement(t *testing.T) {
	out, err := datagen.Resample(xTable(), 5, true, datagen.NewRand(3))
	require.NoError(t, err)
	require.Equal(t, 5, out.Nrow())
	for _, x := range out.Col("x").Records() {
		require.Contains(t, []string{"1", "2", "3"}, x)
	}
}

func TestResampleWithoutReplacementClamps(t *testing.T) {
	out, err := datagen.Resample(xTable(), 5, false, datagen.NewRand(3))
	require.NoError(t, err)
	xs := out.Col("x").Records()
	sort.Strings(xs)
	require.Equal(t, []string{"1", "2", "3"}, xs)

	out, err = datagen.Resample(xTable(), 2, false, datagen.NewRand(3))
	require.NoError(t, err)
	xs = out.Col("x").Records()
	require.Len(t, xs, 2)
	require.NotEqual(t, xs[0], xs[1])
}

func TestResampleKeepsValuesVerbatim(t *testing.T) {
	src := dataframe.LoadRecords([][]string{{"a", "b"}, {"007", "1.50"}, {"x,y", " padded "}},
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	out, err := datagen.Resample(src, 2, false, datagen.NewRand(9))
	require.NoError(t, err)
	got := out.Records()[1:]
	sort.Slice(got, func(i, j int) bool { return got[i][0] < got[j][0] })
	require.Equal(t, [][]string{{"007", "1.50"}, {"x,y", " padded "}}, got)
}

func TestResampleInvalidInput(t *testing.T) {
	_, err := datagen.Resample(xTable(), 0, true, datagen.NewRand(1))
	require.True(t, datagen.IsInvalidInput(err), "%v", err)

	_, err = datagen.Resample(dataframe.DataFrame{}, 3, false, datagen.NewRand(1))
	require.True(t, datagen.IsInvalidInput(err), "%v", err)

	_, err = datagen.Resample(dataframe.DataFrame{}, 3, true, datagen.NewRand(1))
	require.True(t, datagen.IsInvalidInput(err), "%v", err)
}
