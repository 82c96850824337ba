package ode

import (
	"context"
	"math"
	"testing"
)

func testBatch() Batch {
	return Batch{
		Count:   3,
		StartX:  0,
		YSpread: 10,
		Step:    1.0,
		End:     EndCondition{MaxX: Bound(2), MaxSteps: DefaultMaxSteps},
		Field:   flat,
	}
}

func TestBatch_IndexOrder(t *testing.T) {
	trajs, err := testBatch().Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(trajs) != 3 {
		t.Fatalf("expected 3 trajectories, got %d", len(trajs))
	}
	for i, tr := range trajs {
		if len(tr) == 0 {
			t.Fatalf("trajectory %d is empty", i)
		}
		if want := float64(i) * 10; tr[0].Y != want {
			t.Errorf("trajectory %d starts at y=%v, want %v", i, tr[0].Y, want)
		}
		if tr[0].X != 0 {
			t.Errorf("trajectory %d starts at x=%v, want 0", i, tr[0].X)
		}
	}
}

func TestBatch_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Batch)
		wantErr error
	}{
		{"zero count", func(b *Batch) { b.Count = 0 }, ErrNonPositiveCount},
		{"negative count", func(b *Batch) { b.Count = -1 }, ErrNonPositiveCount},
		{"zero step", func(b *Batch) { b.Step = 0 }, ErrNonPositiveStep},
		{"negative step", func(b *Batch) { b.Step = -0.1 }, ErrNonPositiveStep},
		{"nil field", func(b *Batch) { b.Field = nil }, ErrNilField},
		{"no step cap", func(b *Batch) { b.End.MaxSteps = 0 }, ErrNoStepCap},
		{"NaN bound", func(b *Batch) { b.End.MaxX = Bound(math.NaN()) }, ErrBadBound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBatch()
			tt.mutate(&b)

			if _, err := b.Run(context.Background()); err != tt.wantErr {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBatch_DegenerateStartIsNotAnError(t *testing.T) {
	b := testBatch()
	b.YSpread = math.NaN()

	trajs, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("degenerate starts should not fail the batch: %v", err)
	}
	for i, tr := range trajs {
		if len(tr) != 0 {
			t.Errorf("trajectory %d: expected empty for NaN start, got %d points", i, len(tr))
		}
	}
}

func TestBatch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testBatch().Run(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestTotalPoints(t *testing.T) {
	trajs := []Trajectory{
		{{0, 0}, {1, 1}},
		nil,
		{{0, 5}},
	}
	if got := TotalPoints(trajs); got != 3 {
		t.Errorf("TotalPoints = %d, want 3", got)
	}
}
