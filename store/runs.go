package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/harness"
)

// Run is one recorded harness run.
type Run struct {
	ID        string
	StartedAt time.Time
	Engine    string
	Reference string
	Passed    int
	Failed    int
	// Nodes is the total reference node count across the run's cases.
	Nodes uint64
}

// CaseResult is one recorded case of a run.
type CaseResult struct {
	Seq        int
	Name       string
	FEN        string
	Depth      int
	Expected   uint64
	Actual     int64
	Pass       bool
	RefTime    time.Duration
	EngineTime time.Duration
	Failure    string
}

// Record stores a finished run and returns its new ID.
func (s *Store) Record(ctx context.Context, sum harness.Summary) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, engine, reference, passed, failed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, sum.StartedAt.UnixMilli(), sum.Engine, sum.Reference, sum.Passed, sum.Failed)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	for i, o := range sum.Outcomes {
		failure := ""
		if o.Actual.Failure != nil {
			failure = o.Actual.Failure.Error()
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO results
			(run_id, seq, name, fen, depth, expected, actual, pass, ref_ms, engine_ms, failure)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			id, i, o.Case.Name, o.Case.FEN, o.Case.Depth,
			int64(o.Expected), o.Actual.Reported(), o.Pass(),
			o.ExpectedTime.Milliseconds(), o.Actual.Elapsed.Milliseconds(), failure,
		)
		if err != nil {
			return "", fmt.Errorf("record case %q: %w", o.Case.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.started_at, r.engine, r.reference, r.passed, r.failed,
		       COALESCE((SELECT SUM(expected) FROM results WHERE run_id = r.id), 0)
		FROM runs r
		ORDER BY r.started_at DESC, r.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started int64
			nodes   int64
		)
		if err := rows.Scan(&r.ID, &started, &r.Engine, &r.Reference, &r.Passed, &r.Failed, &nodes); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(started).UTC()
		r.Nodes = uint64(nodes)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the cases of a run in execution order.
func (s *Store) Results(ctx context.Context, runID string) ([]CaseResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, name, fen, depth, expected, actual, pass, ref_ms, engine_ms, failure
		FROM results
		WHERE run_id = ?
		ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []CaseResult
	for rows.Next() {
		var (
			c               CaseResult
			expected        int64
			refMS, engineMS int64
		)
		err := rows.Scan(&c.Seq, &c.Name, &c.FEN, &c.Depth, &expected, &c.Actual, &c.Pass, &refMS, &engineMS, &c.Failure)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		c.Expected = uint64(expected)
		c.RefTime = time.Duration(refMS) * time.Millisecond
		c.EngineTime = time.Duration(engineMS) * time.Millisecond
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ harness.Recorder = (*Store)(nil)
