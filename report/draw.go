package report

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/pingcap/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	histBins = 10
	// categorical columns with more distinct values are not charted
	maxBars = 20
)

// drawColumn draws a histogram for numeric columns and a bar chart of value
// counts for the others. It returns "" if the column is not charted:
// constant numeric columns and wide categorical ones.
func drawColumn(dir string, idx int, cs ColumnStats) (string, error) {
	picPath := filepath.Join(dir, fmt.Sprintf("col_%d.png", idx))
	p := plot.New()
	p.Title.Text = cs.Name

	if cs.Numeric {
		if cs.Min == cs.Max {
			return "", nil
		}
		hist, err := plotter.NewHist(plotter.Values(cs.values), histBins)
		if err != nil {
			return "", errors.Trace(err)
		}
		p.Add(hist)
		p.Y.Label.Text = "rows"
	} else {
		if cs.Distinct > maxBars {
			return "", nil
		}
		names := make([]string, 0, len(cs.counts))
		for v := range cs.counts {
			names = append(names, v)
		}
		sort.Strings(names)
		vals := make(plotter.Values, len(names))
		for i, v := range names {
			vals[i] = float64(cs.counts[v])
		}
		bar, err := plotter.NewBarChart(vals, vg.Points(20))
		if err != nil {
			return "", errors.Trace(err)
		}
		p.Add(bar)
		p.NominalX(names...)
		p.Y.Label.Text = "rows"
	}

	if err := p.Save(vg.Points(600), vg.Points(300), picPath); err != nil {
		return "", errors.Trace(err)
	}
	return picPath, nil
}
