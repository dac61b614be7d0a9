package reference

import (
	"context"
	"testing"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos3     = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pos4     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos5     = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	foolMate = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

var perftCases = []struct {
	name  string
	fen   string
	nodes []uint64 // indexed by depth-1
}{
	{"initial", StartPos, []uint64{20, 400, 8902}},
	{"kiwipete", kiwipete, []uint64{48, 2039, 97862}},
	{"position3", pos3, []uint64{14, 191, 2812}},
	{"position4", pos4, []uint64{6, 264, 9467}},
	{"position5", pos5, []uint64{44, 1486, 62379}},
	{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
	{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	{"en passant evasion", "8/8/8/2k5/2pP4/8/B7/4K3 b - d3 0 3", []uint64{8}},
	{"checkmated", foolMate, []uint64{0, 0}},
}

func TestPerftKnownPositions(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		for _, tc := range perftCases {
			for i, want := range tc.nodes {
				depth := i + 1
				got, err := c.Perft(context.Background(), tc.fen, depth)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s %s depth %d", name, tc.name, depth)
			}
		}
	}
}

func TestPerftDepthZeroIsOne(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		for _, tc := range perftCases {
			got, err := c.Perft(context.Background(), tc.fen, 0)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), got, "%s %s", name, tc.name)
		}
	}
}

func TestPerftPosition5Depth4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 4 perft in short mode")
	}
	got, err := dragonCounter{}.Perft(context.Background(), pos5, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(2103487), got)
}

// Positions where en passant, castling and promotion interact with check.
var trickyCases = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{"en passant gives check", "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", 6, 1440467},
	{"pinned en passant", "3k4/3p4/8/K1P4r/8/8/8/8 b - - 0 1", 6, 1134888},
	{"en passant pin along diagonal", "8/8/4k3/8/2p5/8/B2P2K1/8 w - - 0 1", 6, 1015133},
	{"short castle gives check", "5k2/8/8/8/8/8/8/4K2R w K - 0 1", 6, 661072},
	{"long castle gives check", "3k4/8/8/8/8/8/8/R3K3 w Q - 0 1", 6, 803711},
	{"castling rights lost by capture", "r3k2r/1b4bq/8/8/8/8/7B/R3K2R w KQkq - 0 1", 4, 1274206},
	{"castling through attack", "r3k2r/8/3Q4/8/8/5q2/8/R3K2R b KQkq - 0 1", 4, 1720476},
	{"promote to give check", "4k3/1P6/8/8/8/8/K7/8 w - - 0 1", 6, 217342},
	{"underpromote to give check", "8/P1k5/K7/8/8/8/8/8 w - - 0 1", 6, 92683},
	{"self stalemate", "K1k5/8/P7/8/8/8/8/8 w - - 0 1", 6, 2217},
	{"stalemate and checkmate", "8/8/2k5/5q2/5n2/8/5K2/8 b - - 0 1", 4, 23527},
}

func TestPerftTrickyPositions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		for _, tc := range trickyCases {
			got, err := c.Perft(context.Background(), tc.fen, tc.depth)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, got, "%s %s depth %d", name, tc.name, tc.depth)
		}
	}
}

func TestCountRestoresBoard(t *testing.T) {
	for _, tc := range perftCases {
		db, err := NewDragonBoard(tc.fen)
		require.NoError(t, err)
		before := db.FEN()
		_, err = Count[dragontoothmg.Move](context.Background(), db, 3)
		require.NoError(t, err)
		assert.Equal(t, before, db.FEN(), tc.name)
		assert.Empty(t, db.undo)
	}
}

// cancellingBoard cancels its context after a fixed number of pushes.
type cancellingBoard struct {
	*DragonBoard
	pushes int
	cancel context.CancelFunc
}

func (b *cancellingBoard) Push(m dragontoothmg.Move) {
	b.DragonBoard.Push(m)
	b.pushes--
	if b.pushes == 0 {
		b.cancel()
	}
}

func TestCountStopsOnCancel(t *testing.T) {
	db, err := NewDragonBoard(kiwipete)
	require.NoError(t, err)
	before := db.FEN()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := &cancellingBoard{DragonBoard: db, pushes: 1000, cancel: cancel}

	n, err := Count[dragontoothmg.Move](ctx, b, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Equal(t, before, db.FEN())
	assert.Empty(t, db.undo)
}

func TestPerftReturnsPromptlyOnDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := dragonCounter{}.Perft(ctx, StartPos, 8)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	div, err := dragonCounter{}.Divide(ctx, StartPos, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, div)
}

func TestCountIsSumOverChildren(t *testing.T) {
	b, err := NewDragonBoard(kiwipete)
	require.NoError(t, err)

	var sum uint64
	for _, m := range b.LegalMoves() {
		b.Push(m)
		n, err := Count[dragontoothmg.Move](context.Background(), b, 1)
		require.NoError(t, err)
		sum += n
		b.Pop()
	}
	total, err := Count[dragontoothmg.Move](context.Background(), b, 2)
	require.NoError(t, err)
	assert.Equal(t, total, sum)
}

func TestDivideMatchesPerft(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)

		div, err := c.Divide(context.Background(), StartPos, 2)
		require.NoError(t, err)
		require.Len(t, div, 20)
		assert.Equal(t, uint64(20), div["e2e4"])
		assert.Equal(t, uint64(20), div["g1f3"])

		lines, total := SortedDivide(div)
		assert.Equal(t, uint64(400), total)
		assert.Equal(t, "a2a3", lines[0].Move)
		assert.Equal(t, "h2h4", lines[len(lines)-1].Move)
	}
}

func TestDividePromotionKeysAreLowerCase(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		div, err := c.Divide(context.Background(), "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 1)
		require.NoError(t, err)
		assert.Contains(t, div, "a7b8q", name)
		assert.Contains(t, div, "a7a8n", name)
	}
}

func TestDivideDepthZeroIsEmpty(t *testing.T) {
	div, err := dragonCounter{}.Divide(context.Background(), StartPos, 0)
	require.NoError(t, err)
	assert.Empty(t, div)
}

func TestInvalidFEN(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "8/8/8 w - - 0 1"} {
		for _, name := range Names() {
			c, err := ByName(name)
			require.NoError(t, err)
			_, err = c.Perft(context.Background(), fen, 1)
			assert.Error(t, err, "%s %q", name, fen)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("stockfish")
	assert.ErrorContains(t, err, "unknown reference")
	assert.Equal(t, []string{Dragontooth}, Names())

	_, err = ByName("goose")
	assert.ErrorContains(t, err, "unknown reference")
}
