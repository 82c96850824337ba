package ode

// Trace integrates dy/dx = f(x, y) from start by forward Euler stepping and
// returns every point visited before the end condition or a degenerate value
// halts it.
//
// Each iteration checks the current point first: if it lies past a bound or
// either coordinate is NaN/Inf, the loop stops without recording that point.
// Otherwise the point is appended and the state advances by
//
//	y += f(x, y) * step
//	x += step
//
// The result is empty when the starting point already violates the end
// condition or is degenerate. Trace is a pure function of its inputs: the
// same arguments always produce the identical trajectory.
func Trace(start Point, step float64, end EndCondition, f Derivative) Trajectory {
	cur := start
	points := make(Trajectory, 0, 256)

	for len(points) < end.MaxSteps {
		if end.HasReached(cur) {
			break
		}
		if IsDegenerate(cur.X) || IsDegenerate(cur.Y) {
			break
		}

		points = append(points, cur)

		cur.Y += f(cur.X, cur.Y) * step
		cur.X += step
	}

	return points
}
