package report

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/pingcap/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const reportMDFile = "report.md"

// Option controls a preview report.
type Option struct {
	Title       string
	RequestID   string
	PreviewRows int  // rows shown in the preview table, 10 if 0
	NoCharts    bool // skip the PNG charts
}

// ColumnStats summarizes one column of a table.
type ColumnStats struct {
	Name     string
	Numeric  bool
	Count    int
	Distinct int
	// numeric columns
	Mean, StdDev, Min, P50, P90, Max float64
	// the other columns
	Top      string
	TopCount int

	values []float64
	counts map[string]int
}

// Analyze computes the statistics of every column of df. A column is numeric
// if all of its values parse as floats, whatever its declared type.
func Analyze(df dataframe.DataFrame) []ColumnStats {
	names := df.Names()
	stats := make([]ColumnStats, 0, len(names))
	for i, name := range names {
		recs := df.Select(i).Records()
		col := make([]string, 0, len(recs)-1)
		for _, r := range recs[1:] {
			col = append(col, r[0])
		}
		stats = append(stats, analyzeColumn(name, col))
	}
	return stats
}

func analyzeColumn(name string, recs []string) ColumnStats {
	cs := ColumnStats{Name: name, Count: len(recs), counts: make(map[string]int)}
	for _, r := range recs {
		cs.counts[r]++
	}
	cs.Distinct = len(cs.counts)

	values := make([]float64, 0, len(recs))
	for _, r := range recs {
		f, err := strconv.ParseFloat(r, 64)
		if err != nil || math.IsNaN(f) {
			values = nil
			break
		}
		values = append(values, f)
	}
	if len(values) > 0 {
		sort.Float64s(values)
		cs.Numeric = true
		cs.values = values
		cs.Mean, cs.StdDev = stat.MeanStdDev(values, nil)
		cs.Min, cs.Max = floats.Min(values), floats.Max(values)
		cs.P50 = stat.Quantile(0.5, stat.Empirical, values, nil)
		cs.P90 = stat.Quantile(0.9, stat.Empirical, values, nil)
		return cs
	}
	for v, c := range cs.counts {
		if c > cs.TopCount || (c == cs.TopCount && v < cs.Top) {
			cs.Top, cs.TopCount = v, c
		}
	}
	return cs
}

// Generate writes report.md, plus a chart per column, into dir and returns the report path.
func Generate(dir string, df dataframe.DataFrame, opt Option) (string, error) {
	if df.Err != nil {
		return "", errors.Trace(df.Err)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Trace(err)
	}
	if opt.PreviewRows <= 0 {
		opt.PreviewRows = 10
	}
	title := opt.Title
	if title == "" {
		title = "Synthetic Data"
	}

	md := bytes.Buffer{}
	md.WriteString(fmt.Sprintf("# %v\n\n", title))
	if opt.RequestID != "" {
		md.WriteString(fmt.Sprintf("Request: `%v`\n\n", opt.RequestID))
	}
	md.WriteString(fmt.Sprintf("%d rows, %d columns\n\n", df.Nrow(), df.Ncol()))

	md.WriteString("## Preview\n\n")
	writePreview(&md, df, opt.PreviewRows)

	stats := Analyze(df)
	md.WriteString("\n## Numeric Columns\n\n")
	md.WriteString("| Column | Count | Mean | StdDev | Min | P50 | P90 | Max |\n")
	md.WriteString("| ---- | ---- | ---- | ---- | ---- | ---- | ---- | ---- |\n")
	for _, cs := range stats {
		if cs.Numeric {
			md.WriteString(fmt.Sprintf("| %v | %d | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f |\n",
				cs.Name, cs.Count, cs.Mean, cs.StdDev, cs.Min, cs.P50, cs.P90, cs.Max))
		}
	}
	md.WriteString("\n## Other Columns\n\n")
	md.WriteString("| Column | Count | Distinct | Top | Top Count |\n")
	md.WriteString("| ---- | ---- | ---- | ---- | ---- |\n")
	for _, cs := range stats {
		if !cs.Numeric {
			md.WriteString(fmt.Sprintf("| %v | %d | %d | %v | %d |\n",
				cs.Name, cs.Count, cs.Distinct, escapeCell(cs.Top), cs.TopCount))
		}
	}

	if !opt.NoCharts {
		md.WriteString("\n## Distributions\n\n")
		for i, cs := range stats {
			picPath, err := drawColumn(dir, i, cs)
			if err != nil {
				return "", err
			}
			if picPath == "" {
				continue
			}
			md.WriteString(fmt.Sprintf("### %v\n![pic](%v)\n\n", cs.Name, filepath.Base(picPath)))
		}
	}

	reportPath := filepath.Join(dir, reportMDFile)
	return reportPath, errors.Trace(os.WriteFile(reportPath, md.Bytes(), 0666))
}

func writePreview(md *bytes.Buffer, df dataframe.DataFrame, n int) {
	recs := df.Records()
	header := recs[0]
	md.WriteString("| " + strings.Join(escapeCells(header), " | ") + " |\n")
	md.WriteString(strings.Repeat("| ---- ", len(header)) + "|\n")
	for _, row := range recs[1:] {
		if n == 0 {
			break
		}
		n--
		md.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = escapeCell(c)
	}
	return out
}

func escapeCell(c string) string {
	c = strings.ReplaceAll(c, "|", "\\|")
	return strings.ReplaceAll(c, "\n", " ")
}
