package window

import "fmt"

// PlatformError wraps a terminal/OS failure during window or surface
// handling. Platform errors are fatal: they abort startup or the loop.
type PlatformError struct {
	Op  string // "create", "init", "poll"
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
