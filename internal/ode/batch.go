package ode

import (
	"context"
	"sync"
)

// Batch runs independent traces for a family of initial conditions. The
// i-th trace starts at (StartX, i*YSpread) and all traces share the same
// step size, end condition and derivative field.
type Batch struct {
	Count   int
	StartX  float64
	YSpread float64
	Step    float64
	End     EndCondition
	Field   Derivative
}

// Validate checks the batch configuration. It is called by Run before any
// goroutine starts, so a misconfigured batch never integrates anything.
func (b Batch) Validate() error {
	if b.Count <= 0 {
		return ErrNonPositiveCount
	}
	if b.Step <= 0 {
		return ErrNonPositiveStep
	}
	if b.Field == nil {
		return ErrNilField
	}
	return b.End.Validate()
}

// Start returns the initial point of the idx-th trajectory.
func (b Batch) Start(idx int) Point {
	return Point{X: b.StartX, Y: float64(idx) * b.YSpread}
}

// Run integrates every initial condition concurrently and returns the
// trajectories slotted by initial-condition index, regardless of which
// goroutine finishes first. Each slot is written exactly once, so no
// locking is needed beyond the join.
//
// An empty trajectory (degenerate or already-terminated start) is a valid
// result, not an error.
func (b Batch) Run(ctx context.Context) ([]Trajectory, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Trajectory, b.Count)

	var wg sync.WaitGroup
	for i := 0; i < b.Count; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = Trace(b.Start(idx), b.Step, b.End, b.Field)
		}(i)
	}
	wg.Wait()

	return results, nil
}

// TotalPoints counts the points across all trajectories.
func TotalPoints(trajs []Trajectory) int {
	n := 0
	for _, t := range trajs {
		n += len(t)
	}
	return n
}
