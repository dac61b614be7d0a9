// Package engine runs the external move generator under test and reads back
// its perft node count.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// waitDelay bounds how long Count waits for the engine's output pipes to close
// after the engine exits or is killed. A grandchild that inherited stdout
// would otherwise hold Count open until it exits.
const waitDelay = time.Second

// Invoker runs `<Path> <fen> <depth>` and parses the integer it prints.
type Invoker struct {
	// Path is the engine executable.
	Path string
	// Timeout bounds a single invocation. Zero waits forever.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Count runs the engine once for fen at depth. Engine crashes and unreadable
// output are reported through Result.Failure; the returned error is reserved
// for failures to run the engine at all, which callers should treat as fatal.
func (inv *Invoker) Count(ctx context.Context, fen string, depth int) (Result, error) {
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Path, fen, strconv.Itoa(depth))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	log := inv.logger()
	log.Debug("starting engine", "path", inv.Path, "fen", fen, "depth", depth)

	start := time.Now()
	err := cmd.Run()
	res := Result{Elapsed: time.Since(start)}

	if errors.Is(err, exec.ErrWaitDelay) {
		// The engine itself exited 0; only a descendant kept the pipes open.
		log.Warn("engine left output pipes open after exiting", "path", inv.Path)
		err = nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("run engine %s: %w", inv.Path, err)
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return res, fmt.Errorf("run engine %s: %w", inv.Path, ctx.Err())
		}
		res.Failure = &ExitError{
			Code:     exitErr.ExitCode(),
			Stderr:   stderr.String(),
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
		}
		log.Debug("engine failed", "code", exitErr.ExitCode(), "elapsed", res.Elapsed)
		return res, nil
	}

	out := strings.TrimSpace(stdout.String())
	// Counts are parsed as int64 so every accepted count is also reportable.
	nodes, err := strconv.ParseInt(out, 10, 64)
	if err != nil || nodes < 0 {
		res.Failure = &OutputError{Output: out}
		log.Debug("engine output not a count", "output", out)
		return res, nil
	}
	res.Nodes = uint64(nodes)
	log.Debug("engine finished", "nodes", nodes, "elapsed", res.Elapsed)
	return res, nil
}

func (inv *Invoker) logger() *slog.Logger {
	if inv.Logger != nil {
		return inv.Logger
	}
	return slog.Default()
}
