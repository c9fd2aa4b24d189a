package rules_test

import (
	"sort"
	"testing"

	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"chessmate/pkg/rules"
)

func TestPerftKnownPositions(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"initial d1", rules.StartFEN, 1, 20},
		{"initial d2", rules.StartFEN, 2, 400},
		{"initial d3", rules.StartFEN, 3, 8902},
		{"initial d4", rules.StartFEN, 4, 197281},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"endgame d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"endgame d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"promotions d1", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
		{"promotions d2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
		{"talkchess d1", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44},
		{"talkchess d2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := mustParse(t, tc.fen)
			if got := rules.Perft(p, tc.depth); got != tc.nodes {
				t.Fatalf("perft(%d) = %d, want %d", tc.depth, got, tc.nodes)
			}
		})
	}
}

func TestDivideInitialDepthTwo(t *testing.T) {
	div := rules.Divide(rules.Start(), 2)
	if len(div) != 20 {
		t.Fatalf("divide length: got %d want 20", len(div))
	}
	var sum uint64
	for m, n := range div {
		if n != 20 {
			t.Errorf("%s: got %d children, want 20", m, n)
		}
		sum += n
	}
	if sum != 400 {
		t.Fatalf("divide sum: got %d want 400", sum)
	}
}

// referenceMoves returns the legal moves of the reference implementation in
// UCI notation, sorted.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("reference FEN(%q): %v", fen, err)
	}
	g := chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))
	moves := g.ValidMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// TestLegalMovesMatchReference cross-checks the generator against
// notnil/chess: the full move set must agree at the root and at every child
// of each tricky position.
func TestLegalMovesMatchReference(t *testing.T) {
	fens := []string{
		rules.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 3",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}

	for _, fen := range fens {
		p := mustParse(t, fen)
		got := moveStrings(rules.LegalMoves(p))
		want := referenceMoves(t, fen)
		if !slices.Equal(got, want) {
			t.Errorf("move set mismatch at %s:\n got  %v\n want %v", fen, got, want)
			continue
		}

		for _, m := range rules.LegalMoves(p) {
			child := p.Apply(m)
			got := moveStrings(rules.LegalMoves(child))
			want := referenceMoves(t, child.FEN())
			if !slices.Equal(got, want) {
				t.Errorf("move set mismatch after %s at %s:\n got  %v\n want %v", m, child.FEN(), got, want)
			}
		}
	}
}
