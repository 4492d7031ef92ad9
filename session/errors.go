package session

import "errors"

// ErrWrongMode is returned when an operation is not available in the current mode:
// cell edits need Edit mode, pivots need Pivot mode.
var ErrWrongMode = errors.New("session: operation not allowed in this mode")

// ErrUnknownMode is returned by ParseMode for an unrecognized name.
var ErrUnknownMode = errors.New("session: unknown mode")
