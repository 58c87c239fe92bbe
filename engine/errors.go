package engine

import "fmt"

// EngineError wraps a failure surfaced by the embedded engine through its
// handle. The shell logs Handle errors and continues; Attach and Render
// errors abort the loop.
type EngineError struct {
	Op  string // "attach", "handle", "render", "close"
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
