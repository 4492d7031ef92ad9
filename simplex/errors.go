// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set. Match with errors.Is.

package simplex

import "errors"

var (
	// ErrOptimal is returned by Next when no column improves the objective.
	ErrOptimal = errors.New("simplex: tableau is optimal")

	// ErrUnbounded is returned when the entering column has no positive
	// constraint entry, so the objective improves without limit.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrIterationLimit is returned when Run reaches the configured maximum.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")

	// ErrInfeasibleStart is returned when a constraint row has a negative RHS,
	// so the current basis is not a feasible starting point.
	ErrInfeasibleStart = errors.New("simplex: starting basis is infeasible")

	// ErrUnknownRule is returned by ParseRule for an unrecognized name.
	ErrUnknownRule = errors.New("simplex: unknown pivot rule")

	// ErrUnknownSense is returned by ParseSense for an unrecognized name.
	ErrUnknownSense = errors.New("simplex: unknown objective sense")
)
