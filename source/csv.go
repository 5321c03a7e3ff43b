package source

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// verbatim keeps every cell as the exact string it was read as.
var verbatim = []dataframe.LoadOption{
	dataframe.HasHeader(true),
	dataframe.DetectTypes(false),
	dataframe.DefaultType(series.String),
	dataframe.NaNValues(nil),
}

// ReadCSV reads a CSV table with a header row.
// A file with a header but no data rows yields an empty table.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, errors.Annotate(err, "read csv")
	}
	df, err := loadRecords(records)
	return df, errors.Annotate(err, "read csv")
}

// LoadCSV reads the CSV file at path.
func LoadCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	defer f.Close()
	return ReadCSV(stripBOM(f))
}

// loadRecords builds a table from a header record followed by data records.
func loadRecords(records [][]string) (dataframe.DataFrame, error) {
	if len(records) <= 1 {
		var names []string
		if len(records) == 1 {
			names = records[0]
		}
		return emptyTable(names), nil
	}
	df := dataframe.LoadRecords(records, verbatim...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Trace(df.Err)
	}
	return df, nil
}

// emptyTable is a table with columns but no rows; resampling it is rejected.
func emptyTable(names []string) dataframe.DataFrame {
	zap.L().Warn("source table has no rows", zap.Strings("columns", names))
	return dataframe.DataFrame{}
}

func stripBOM(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, _ := io.ReadFull(r, buf)
	if n == 3 && string(buf) == "\xEF\xBB\xBF" {
		return r
	}
	return io.MultiReader(bytes.NewReader(buf[:n]), r)
}
