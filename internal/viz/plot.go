package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/photonlab/internal/experiment"
	"github.com/san-kum/photonlab/internal/sweep"
)

const (
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 12
)

// PlotOptions sizes the terminal charts.
type PlotOptions struct {
	Width  int
	Height int
	Theme  Theme
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: DefaultPlotWidth, Height: DefaultPlotHeight, Theme: ThemeCyberpunk}
}

// PlotReport draws the report series as asciigraph charts. Series sharing
// a y-axis label share a chart; x runs over the sample index, so the
// caption carries the x range.
func PlotReport(rep *experiment.Report, opts PlotOptions) string {
	var charts []string
	for _, group := range groupByAxis(rep.Series) {
		if chart := PlotSeries(group, opts); chart != "" {
			charts = append(charts, chart)
		}
	}
	return strings.Join(charts, "\n\n")
}

// PlotSeries draws several series on one asciigraph chart.
func PlotSeries(series []sweep.Series, opts PlotOptions) string {
	var (
		data    [][]float64
		legends []string
		first   sweep.Series
	)
	for _, s := range series {
		if s.Len() < 2 {
			continue
		}
		if data == nil {
			first = s
		}
		data = append(data, s.Y)
		legends = append(legends, s.Name)
	}
	if len(data) == 0 {
		return ""
	}

	caption := fmt.Sprintf("%s vs %s [%s .. %s]", first.YLabel, first.XLabel,
		FormatValue(first.X[0], ""), FormatValue(first.X[len(first.X)-1], ""))

	options := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	}
	if colors := opts.Theme.Series; len(colors) > 0 {
		used := make([]asciigraph.AnsiColor, len(data))
		for i := range used {
			used[i] = colors[i%len(colors)]
		}
		options = append(options, asciigraph.SeriesColors(used...))
	}
	if len(data) > 1 {
		options = append(options, asciigraph.SeriesLegends(legends...))
	}
	return asciigraph.PlotMany(data, options...)
}

func groupByAxis(series []sweep.Series) [][]sweep.Series {
	var (
		groups [][]sweep.Series
		index  = map[string]int{}
	)
	for _, s := range series {
		key := s.XLabel + "|" + s.YLabel
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}
