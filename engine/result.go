package engine

import (
	"fmt"
	"time"
)

// Result is the outcome of one engine invocation: either a node count or a
// failure explaining why no count is available.
type Result struct {
	// Nodes never exceeds math.MaxInt64.
	Nodes   uint64
	Elapsed time.Duration
	// Failure is *ExitError or *OutputError when the engine produced no count.
	Failure error
}

// OK reports whether the engine returned a count.
func (r Result) OK() bool { return r.Failure == nil }

// Reported is the count as displayed in reports: -1 when the engine failed.
func (r Result) Reported() int64 {
	if r.Failure != nil {
		return -1
	}
	return int64(r.Nodes)
}

// ExitError means the engine exited with a non-zero status.
type ExitError struct {
	Code     int
	Stderr   string
	TimedOut bool
}

func (e *ExitError) Error() string {
	if e.TimedOut {
		return "engine timed out and was killed"
	}
	return fmt.Sprintf("engine exited with status %d", e.Code)
}

// OutputError means the engine exited cleanly but did not print an integer.
type OutputError struct {
	Output string
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("engine returned non-numeric output %q", e.Output)
}
