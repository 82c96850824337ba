// Package ode provides the forward Euler tracing core.
//
// The package defines the primitives for integrating a scalar first-order
// ODE of the form dy/dx = f(x, y) from a family of initial conditions:
//
//   - [Point]: an (x, y) sample in the solution space
//   - [Derivative]: the scalar field f(x, y)
//   - [EndCondition]: per-trace stopping predicate plus a hard step cap
//   - [Trace]: the stepping loop producing one [Trajectory]
//   - [Batch]: fork-join runner over a family of initial conditions
//
// # Termination
//
// A trace halts when the current point passes a configured x or |y| bound,
// when either coordinate becomes NaN or infinite, or when the step cap is
// hit. Degenerate points are never recorded, so every point in a returned
// trajectory is finite.
//
// # Thread safety
//
// Trace is pure and safe to call from any number of goroutines. Batch.Run
// fans a goroutine out per initial condition and slots results by index;
// each result slot is written exactly once.
package ode
