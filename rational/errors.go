// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Parsing failures are reported as *ParseError wrapping one of the sentinels
// below; callers match with errors.Is and may read the offending text via
// errors.As.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when the text is not an integer or p/q literal.
	ErrMalformed = errors.New("rational: malformed literal")

	// ErrDivisionByZero is returned for a literal p/0 and by Quo/Inv on a zero divisor.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

// ParseError records the raw input that failed to parse.
type ParseError struct {
	Text string // raw input as given by the caller
	Err  error  // ErrMalformed or ErrDivisionByZero
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
