package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fieldplot/internal/ode"
)

// seriesColors mirrors the chart palette: red, default (black on light
// terminals), blue, green.
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Default,
	asciigraph.Blue,
	asciigraph.Green,
}

// Preview renders the trajectories as one overlaid terminal chart of y per
// recorded step. Empty trajectories are skipped.
func Preview(trajs []ode.Trajectory, width, height int) string {
	series := make([][]float64, 0, len(trajs))
	colors := make([]asciigraph.AnsiColor, 0, len(trajs))

	for i, tr := range trajs {
		if len(tr) == 0 {
			continue
		}
		ys := make([]float64, len(tr))
		for j, p := range tr {
			ys[j] = p.Y
		}
		series = append(series, ys)
		colors = append(colors, seriesColors[i%len(seriesColors)])
	}

	if len(series) == 0 {
		return "no points to plot"
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("y per step"),
		asciigraph.SeriesColors(colors...),
	)
}
