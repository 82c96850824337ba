package chart

import (
	"errors"

	"github.com/san-kum/fieldplot/internal/ode"
)

// Margin is added to every side of the computed viewport.
const Margin = 1.0

// ErrNoPoints indicates the batch produced zero points, so there is no
// min/max to reduce.
var ErrNoPoints = errors.New("chart: no points to plot")

// Viewport is the rectangular coordinate bounds of the rendered chart.
type Viewport struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// ComputeViewport folds min/max over the union of all points and pads each
// side by Margin. Empty trajectories are skipped; if every trajectory is
// empty it returns ErrNoPoints.
func ComputeViewport(trajs []ode.Trajectory) (Viewport, error) {
	var minX, maxX, minY, maxY float64
	first := true

	for _, tr := range trajs {
		for _, p := range tr {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	if first {
		return Viewport{}, ErrNoPoints
	}

	return Viewport{
		Left:   minX - Margin,
		Right:  maxX + Margin,
		Bottom: minY - Margin,
		Top:    maxY + Margin,
	}, nil
}
