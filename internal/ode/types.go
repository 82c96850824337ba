package ode

import "math"

// Point is a single (x, y) sample in the solution space. It is a plain
// value; copies are independent.
type Point struct {
	X float64
	Y float64
}

// Trajectory is the ordered sequence of points produced by one integration
// run, in generation order (x strictly increasing by the step size).
type Trajectory []Point

// Last returns the final point of the trajectory, if any.
func (t Trajectory) Last() (Point, bool) {
	if len(t) == 0 {
		return Point{}, false
	}
	return t[len(t)-1], true
}

// Derivative is a scalar field dy/dx = f(x, y).
type Derivative func(x, y float64) float64

// IsDegenerate reports whether v is unusable for further integration
// (NaN or ±Inf). Zero and subnormal values are fine.
func IsDegenerate(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// DefaultMaxSteps bounds a trace that has no x or |y| limit configured.
const DefaultMaxSteps = 1 << 22

// EndCondition decides when a trace stops. MaxX and MaxAbsY are optional;
// nil means unbounded on that axis. MaxSteps is a hard cap on recorded
// points and must always be positive.
type EndCondition struct {
	MaxX     *float64
	MaxAbsY  *float64
	MaxSteps int
}

// Bound is a convenience constructor for optional bounds.
func Bound(v float64) *float64 { return &v }

// HasReached reports whether p lies past a configured bound. The bound
// itself is inclusive: only a point strictly beyond it stops the trace.
func (e EndCondition) HasReached(p Point) bool {
	if e.MaxX != nil && p.X > *e.MaxX {
		return true
	}
	if e.MaxAbsY != nil && math.Abs(p.Y) > *e.MaxAbsY {
		return true
	}
	return false
}

// Validate rejects conditions that could not terminate a trace.
func (e EndCondition) Validate() error {
	if e.MaxSteps <= 0 {
		return ErrNoStepCap
	}
	if e.MaxX != nil && math.IsNaN(*e.MaxX) {
		return ErrBadBound
	}
	if e.MaxAbsY != nil && math.IsNaN(*e.MaxAbsY) {
		return ErrBadBound
	}
	return nil
}
