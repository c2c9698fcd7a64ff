package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/photonlab/internal/experiment"
)

// ChartKind selects the go-chart renderer.
type ChartKind int

const (
	ChartPNG ChartKind = iota
	ChartVector
)

// NewChart builds a line chart of every series in the report. Axis names
// come from the first series.
func NewChart(rep *experiment.Report) (*chart.Chart, error) {
	if len(rep.Series) == 0 {
		return nil, fmt.Errorf("report %s has no series", rep.Name)
	}

	series := make([]chart.Series, 0, len(rep.Series))
	for i, s := range rep.Series {
		if len(s.X) < 2 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2,
			},
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("report %s has no series with two or more points", rep.Name)
	}

	ch := &chart.Chart{
		Title:      rep.Title,
		Width:      900,
		Height:     500,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: rep.Series[0].XLabel},
		YAxis:      chart.YAxis{Name: rep.Series[0].YLabel},
		Series:     series,
	}

	// go-chart refuses a zero-height range, e.g. an all-zero cross-section.
	if b, ok := seriesBounds(rep.Series); ok && b.minY == b.maxY {
		ch.YAxis.Range = &chart.ContinuousRange{Min: b.minY - 1, Max: b.maxY + 1}
	}

	if len(series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch, nil
}

// WriteChart renders the report chart as PNG or SVG.
func WriteChart(w io.Writer, rep *experiment.Report, kind ChartKind) error {
	ch, err := NewChart(rep)
	if err != nil {
		return err
	}
	var provider chart.RendererProvider = chart.PNG
	if kind == ChartVector {
		provider = chart.SVG
	}
	return ch.Render(provider, w)
}

func sortedFlags(flags map[string]bool) []string {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
