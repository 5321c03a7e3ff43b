// Package export serializes generated tables.
package export

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/golang/snappy"
	"github.com/pingcap/errors"
)

// Compression of an exported file.
type Compression string

const (
	NoCompression Compression = ""
	Snappy        Compression = "snappy"
)

// ParseCompression accepts "", "none" and "snappy".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoCompression, nil
	case "snappy", "sz":
		return Snappy, nil
	}
	return NoCompression, errors.Errorf("unknown compression=%v", s)
}

// Ext is the file extension appended for the compression.
func (c Compression) Ext() string {
	if c == Snappy {
		return ".sz"
	}
	return ""
}

// WriteCSV writes df as UTF-8 CSV: a header row then one line per row, no index column.
// Floats are written with the fewest digits that read back to the same value.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return errors.Trace(df.Err)
	}
	records := df.Records()
	for j, t := range df.Types() {
		if t != series.Float {
			continue
		}
		sel := df.Select(j)
		if sel.Err != nil {
			return errors.Trace(sel.Err)
		}
		for i, f := range sel.Col(sel.Names()[0]).Float() {
			records[i+1][j] = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return errors.Trace(csv.NewWriter(w).WriteAll(records))
}

// WriteFile writes df to path, appending the compression's extension.
// It returns the path written.
func WriteFile(path string, df dataframe.DataFrame, c Compression) (string, error) {
	if !strings.HasSuffix(path, c.Ext()) {
		path += c.Ext()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0666)
	if err != nil {
		return "", errors.Trace(err)
	}
	defer f.Close()

	var w io.Writer
	var flush func() error
	switch c {
	case Snappy:
		sw := snappy.NewBufferedWriter(f)
		w, flush = sw, sw.Close
	default:
		bw := bufio.NewWriter(f)
		w, flush = bw, bw.Flush
	}
	if err := WriteCSV(w, df); err != nil {
		return "", err
	}
	if err := flush(); err != nil {
		return "", errors.Trace(err)
	}
	return path, errors.Trace(f.Close())
}

// OpenFile opens a file written by WriteFile, decompressing by extension.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if strings.HasSuffix(path, Snappy.Ext()) {
		return struct {
			io.Reader
			io.Closer
		}{snappy.NewReader(f), f}, nil
	}
	return f, nil
}
