package ode

import "errors"

// Domain errors for batch configuration. All are detected before any
// integration starts.
var (
	// ErrNonPositiveStep indicates a zero or negative step size.
	ErrNonPositiveStep = errors.New("ode: step size must be positive")

	// ErrNonPositiveCount indicates a zero or negative trajectory count.
	ErrNonPositiveCount = errors.New("ode: trajectory count must be positive")

	// ErrNilField indicates a missing derivative function.
	ErrNilField = errors.New("ode: derivative field is nil")

	// ErrBadBound indicates a configured bound that is itself NaN.
	ErrBadBound = errors.New("ode: end condition bound is NaN")

	// ErrNoStepCap indicates a missing or non-positive max-steps cap.
	ErrNoStepCap = errors.New("ode: max steps cap must be positive")
)
