package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fieldplot/internal/ode"
)

func TestRender_WritesPNG(t *testing.T) {
	trajs := []ode.Trajectory{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}},
		{{X: 0, Y: 10}, {X: 1, Y: 9}},
		nil, // empty trajectories must not break rendering
	}
	view, err := ComputeViewport(trajs)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	opts := Options{Width: 320, Height: 240, Title: "test"}
	if err := Render(path, trajs, view, opts); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("canvas size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestRender_UnwritablePath(t *testing.T) {
	trajs := []ode.Trajectory{{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	view, err := ComputeViewport(trajs)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	if err := Render(path, trajs, view, Options{Width: 100, Height: 100}); err == nil {
		t.Error("expected error for unwritable path")
	}
}
