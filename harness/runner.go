// Package harness compares an engine's perft counts with a reference move
// generator and reports the result of every case.
package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/engine"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/reference"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/suite"
)

// EngineCounter asks the engine under test for a node count.
type EngineCounter interface {
	Count(ctx context.Context, fen string, depth int) (engine.Result, error)
}

// Recorder stores a finished run.
type Recorder interface {
	Record(ctx context.Context, s Summary) (string, error)
}

// Clock supplies wall time for the reference timings.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Runner executes cases one after another and writes the console report.
type Runner struct {
	Reference reference.Counter
	Engine    EngineCounter
	Out       io.Writer
	Logger    *slog.Logger
	// Recorder is optional.
	Recorder Recorder
	// EngineName labels recorded runs, usually the executable path.
	EngineName string
	Clock      Clock
}

// Run checks every case in order. A failing case does not stop the run;
// a malformed position, an engine that cannot be started, or a cancelled ctx
// does.
func (r *Runner) Run(ctx context.Context, cases []suite.Case) (Summary, error) {
	sum := Summary{
		StartedAt: r.clock().Now(),
		Engine:    r.EngineName,
		Reference: r.Reference.Name(),
	}
	for _, c := range cases {
		o, err := r.RunCase(ctx, c)
		if err != nil {
			return sum, fmt.Errorf("case %q: %w", c.Name, err)
		}
		sum.add(o)
	}
	writeSummary(r.Out, sum)

	if r.Recorder != nil {
		id, err := r.Recorder.Record(ctx, sum)
		if err != nil {
			return sum, fmt.Errorf("record run: %w", err)
		}
		sum.ID = id
		r.logger().Info("run recorded", "id", id)
	}
	return sum, nil
}

// RunCase counts one case with the reference, then with the engine, and
// reports the comparison.
func (r *Runner) RunCase(ctx context.Context, c suite.Case) (Outcome, error) {
	log := r.logger().With("case", c.Name, "depth", c.Depth)
	o := Outcome{Case: c}
	writeHeader(r.Out, c)

	fmt.Fprintf(r.Out, "Calculating ground truth (%s)... ", r.Reference.Name())
	start := r.clock().Now()
	expected, err := r.Reference.Perft(ctx, c.FEN, c.Depth)
	if err != nil {
		fmt.Fprintln(r.Out)
		return o, err
	}
	o.Expected = expected
	o.ExpectedTime = r.clock().Now().Sub(start)
	fmt.Fprintf(r.Out, "Done. (%d nodes, %s)\n", o.Expected, seconds(o.ExpectedTime))
	log.Debug("reference counted", "nodes", o.Expected, "elapsed", o.ExpectedTime)

	fmt.Fprint(r.Out, "Running engine...                    ")
	actual, err := r.Engine.Count(ctx, c.FEN, c.Depth)
	if err != nil {
		fmt.Fprintln(r.Out)
		return o, err
	}
	o.Actual = actual
	writeFailure(r.Out, actual.Failure)
	fmt.Fprintf(r.Out, "Done. (%d nodes, %s)\n", actual.Reported(), seconds(actual.Elapsed))

	writeVerdict(r.Out, o)
	if !o.Pass() {
		log.Warn("node count mismatch", "expected", o.Expected, "actual", actual.Reported())
	}
	return o, nil
}

func (r *Runner) clock() Clock {
	if r.Clock != nil {
		return r.Clock
	}
	return systemClock{}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
