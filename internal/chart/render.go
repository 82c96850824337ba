package chart

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/fieldplot/internal/ode"
)

// Options control the rendered artifact. Width and Height are pixels.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Render draws each trajectory as a colored polyline inside the viewport
// and writes the chart to path as a PNG. Empty trajectories are skipped but
// keep their palette slot so colors stay stable per index.
func Render(path string, trajs []ode.Trajectory, view Viewport, opts Options) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = view.Left, view.Right
	p.Y.Min, p.Y.Max = view.Bottom, view.Top
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	for i, tr := range trajs {
		if len(tr) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(tr))
		for j, pt := range tr {
			xys[j].X = pt.X
			xys[j].Y = pt.Y
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("chart: series %d: %w", i, err)
		}
		line.Color = SeriesColor(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("y0=%g", tr[0].Y), line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// Backing image fixes the pixel size exactly, independent of DPI math.
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("chart: write png: %w", err)
	}
	return f.Close()
}
