package harness

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/engine"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/suite"
)

const rule = "=================================================="

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func writeHeader(w io.Writer, c suite.Case) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "TEST: %s (Depth %d)\n", c.Name, c.Depth)
	fmt.Fprintf(w, "FEN:  %s\n", c.FEN)
}

func writeFailure(w io.Writer, failure error) {
	var exitErr *engine.ExitError
	var outErr *engine.OutputError
	switch {
	case failure == nil:
	case errors.As(failure, &exitErr):
		fmt.Fprintf(w, "CRITICAL: Engine crashed or returned an error (%v)\n", exitErr)
		fmt.Fprintf(w, "Error output: %s\n", strings.TrimSpace(exitErr.Stderr))
	case errors.As(failure, &outErr):
		fmt.Fprintf(w, "CRITICAL: Engine returned non-numeric output: '%s'\n", outErr.Output)
	default:
		fmt.Fprintf(w, "CRITICAL: %v\n", failure)
	}
}

func writeVerdict(w io.Writer, o Outcome) {
	if o.Pass() {
		fmt.Fprintln(w, "RESULT: PASS")
		fmt.Fprintf(w, "Speedup: engine was %.1fx faster than the reference.\n", o.Speedup())
		return
	}
	fmt.Fprintln(w, "RESULT: FAIL")
	diff := o.Difference()
	fmt.Fprintf(w, "Difference: %+d nodes\n", diff)
	if diff > 0 {
		fmt.Fprintln(w, "Hint: The engine is generating EXTRA moves (likely pseudo-legal moves that are actually illegal).")
	} else {
		fmt.Fprintln(w, "Hint: The engine is MISSING moves (likely legal moves being rejected as illegal).")
	}
}

func writeSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "SUMMARY: %d/%d passed\n", s.Passed, len(s.Outcomes))
}
