// Package charts turns view specs into ECharts figures. Chart rendering
// itself is delegated to go-echarts; this package only maps data in.
package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/cratestats/cratestats/internal/view"
)

// Element IDs are fixed so the dashboard's slider script can look the chart
// instances up by DOM node.
const (
	BarChartID = "crate-categories"
	PieChartID = "crate-categories-pie"
)

// Bar builds the categories-vs-counts bar chart.
func Bar(spec view.BarSpec) *charts.Bar {
	bar := charts.NewBar()

	data := make([]opts.BarData, len(spec.Y))
	for i, y := range spec.Y {
		data[i] = opts.BarData{Value: y}
	}

	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: BarChartID,
			Width:   "900px",
			Height:  "400px",
		}),
	)
	bar.SetXAxis(spec.X).AddSeries("crates", data)

	return bar
}

// Pie builds the category-share pie chart.
func Pie(spec view.PieSpec) *charts.Pie {
	pie := charts.NewPie()

	data := make([]opts.PieData, len(spec.Labels))
	for i, label := range spec.Labels {
		data[i] = opts.PieData{Name: label, Value: spec.Values[i]}
	}

	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: PieChartID,
			Width:   "900px",
			Height:  "500px",
		}),
	)
	pie.AddSeries("crates", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)

	return pie
}

// Snippets renders both charts as embeddable fragments for the dashboard
// template.
func Snippets(bar view.BarSpec, pie view.PieSpec) (render.ChartSnippet, render.ChartSnippet) {
	return Bar(bar).RenderSnippet(), Pie(pie).RenderSnippet()
}
