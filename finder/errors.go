package finder

import "errors"

var (
	// ErrInvalidPattern is returned when a name glob or command-line
	// regular expression fails to compile. It is reported before any
	// process enumeration happens.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnavailable is returned when the process table itself cannot be
	// read. Per-process read failures are not reported as errors; those
	// processes are simply skipped.
	ErrUnavailable = errors.New("process table unavailable")
)
