package reference

import (
	"context"
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// DragonBoard adapts a dragontoothmg board to Board. Each Push keeps the
// undo closure returned by Apply so Pop can restore the exact prior state.
type DragonBoard struct {
	board dragontoothmg.Board
	undo  []func()
}

// NewDragonBoard parses fen into a dragontoothmg board.
func NewDragonBoard(fen string) (b *DragonBoard, err error) {
	if err := ValidateFEN(fen); err != nil {
		return nil, err
	}
	// dragontoothmg indexes into the FEN fields without checking them.
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("dragontoothmg: parse %q: %v", fen, r)
		}
	}()
	return &DragonBoard{board: dragontoothmg.ParseFen(fen)}, nil
}

func (d *DragonBoard) LegalMoves() []dragontoothmg.Move {
	return d.board.GenerateLegalMoves()
}

func (d *DragonBoard) Push(m dragontoothmg.Move) {
	d.undo = append(d.undo, d.board.Apply(m))
}

func (d *DragonBoard) Pop() {
	n := len(d.undo) - 1
	d.undo[n]()
	d.undo = d.undo[:n]
}

func (d *DragonBoard) FEN() string { return d.board.ToFen() }

func dragonUCI(m dragontoothmg.Move) string { return m.String() }

type dragonCounter struct{}

func (dragonCounter) Name() string { return Dragontooth }

func (dragonCounter) Perft(ctx context.Context, fen string, depth int) (uint64, error) {
	b, err := NewDragonBoard(fen)
	if err != nil {
		return 0, err
	}
	return Count[dragontoothmg.Move](ctx, b, depth)
}

func (dragonCounter) Divide(ctx context.Context, fen string, depth int) (map[string]uint64, error) {
	b, err := NewDragonBoard(fen)
	if err != nil {
		return nil, err
	}
	return Divide[dragontoothmg.Move](ctx, b, depth, dragonUCI)
}
