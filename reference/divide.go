package reference

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DivideLine is one root move and the leaf count below it.
type DivideLine struct {
	Move  string
	Nodes uint64
}

// SortedDivide orders a divide result by move text and returns its total.
func SortedDivide(div map[string]uint64) ([]DivideLine, uint64) {
	moves := maps.Keys(div)
	slices.Sort(moves)
	lines := make([]DivideLine, 0, len(moves))
	var total uint64
	for _, m := range moves {
		lines = append(lines, DivideLine{Move: m, Nodes: div[m]})
		total += div[m]
	}
	return lines, total
}
