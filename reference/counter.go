package reference

import (
	"context"
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Dragontooth names the dragontoothmg backend, the only one trusted as
// ground truth. goosemg drops en passant captures that evade check, so it is
// used for FEN validation only.
const Dragontooth = "dragontooth"

// StartPos is the standard initial position.
const StartPos = goosemg.FENStartPos

// Counter computes ground-truth perft results for a FEN position using one
// move generator library.
type Counter interface {
	Name() string
	Perft(ctx context.Context, fen string, depth int) (uint64, error)
	Divide(ctx context.Context, fen string, depth int) (map[string]uint64, error)
}

var counters = map[string]Counter{
	Dragontooth: dragonCounter{},
}

// ByName returns the counter registered under name.
func ByName(name string) (Counter, error) {
	c, ok := counters[name]
	if !ok {
		return nil, fmt.Errorf("unknown reference %q (want one of %v)", name, Names())
	}
	return c, nil
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := maps.Keys(counters)
	slices.Sort(names)
	return names
}

// ValidateFEN reports whether fen describes a parseable position.
func ValidateFEN(fen string) error {
	if _, err := goosemg.ParseFEN(fen); err != nil {
		return fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return nil
}
