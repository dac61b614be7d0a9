// Package suite defines the positions the harness checks.
package suite

import (
	"fmt"
	"path/filepath"
)

// Case is one position and the depth to count it to.
type Case struct {
	Name  string `yaml:"name" json:"name"`
	FEN   string `yaml:"fen" json:"fen"`
	Depth int    `yaml:"depth" json:"depth"`
}

// Suite is a named, ordered list of cases.
type Suite struct {
	Name  string `yaml:"name" json:"name"`
	Cases []Case `yaml:"cases" json:"cases"`
}

// Default returns the built-in suite: the standard start position and the
// usual perft stress positions.
func Default() Suite {
	return Suite{
		Name: "standard",
		Cases: []Case{
			{Name: "Start Pos", FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Depth: 3},
			{Name: "Pos 2", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Depth: 3},
			{Name: "Pos 3", FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Depth: 3},
			{Name: "Pos 4", FEN: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", Depth: 3},
			{Name: "Pos 5", FEN: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", Depth: 4},
		},
	}
}

// Filter keeps the cases whose name matches the glob pattern, in order.
// An empty pattern keeps everything.
func (s Suite) Filter(pattern string) (Suite, error) {
	if pattern == "" {
		return s, nil
	}
	out := Suite{Name: s.Name}
	for _, c := range s.Cases {
		ok, err := filepath.Match(pattern, c.Name)
		if err != nil {
			return Suite{}, fmt.Errorf("invalid filter pattern: %w", err)
		}
		if ok {
			out.Cases = append(out.Cases, c)
		}
	}
	return out, nil
}
