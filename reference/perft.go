// Package reference computes ground-truth perft node counts with a
// third-party legal move generator.
package reference

import (
	"context"
	"strings"
)

// Board is a mutable position that can enumerate its legal moves and apply or
// revert them in strict stack order.
type Board[M any] interface {
	LegalMoves() []M
	Push(m M)
	Pop()
	FEN() string
}

// Count returns the number of leaf positions reachable from b after exactly
// depth plies. Depth 0 always counts the current position as one leaf.
// The board is restored to its starting state before Count returns, including
// when ctx is cancelled part way through.
func Count[M any](ctx context.Context, b Board[M], depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	// ctx is not polled at leaf parents.
	if depth > 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}
	var nodes uint64
	for _, m := range b.LegalMoves() {
		b.Push(m)
		n, err := Count(ctx, b, depth-1)
		b.Pop()
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each legal root move, keyed by the
// move's lower-case UCI text. The values sum to Count(b, depth).
func Divide[M any](ctx context.Context, b Board[M], depth int, uci func(M) string) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	for _, m := range b.LegalMoves() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.Push(m)
		n, err := Count(ctx, b, depth-1)
		b.Pop()
		if err != nil {
			return nil, err
		}
		result[strings.ToLower(uci(m))] = n
	}
	return result, nil
}
