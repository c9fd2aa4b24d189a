package rules_test

import (
	"testing"

	"chessmate/pkg/rules"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		rules.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 12 40",
	}
	for _, fen := range fens {
		p := mustParse(t, fen)
		if got := p.FEN(); got != fen {
			t.Errorf("round trip:\n in  %s\n out %s", fen, got)
		}
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",    // 7 ranks
		"rnbqkbnr/ppppppppp/8/8/8/8/8/RNBQKBNR w KQkq - 0 1", // 9 files
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XX - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1", // no kings
	}
	for _, fen := range bad {
		if _, err := rules.ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) accepted malformed input", fen)
		}
	}
}

func TestStartPosition(t *testing.T) {
	p := rules.Start()
	if p.Turn != rules.White {
		t.Fatal("White should move first")
	}
	if p.Rights != rules.AllCastling {
		t.Fatalf("rights: %04b", p.Rights)
	}
	if p.At(sq(t, "e1")) != rules.WhiteKing || p.At(sq(t, "d8")) != rules.BlackQueen {
		t.Fatal("starting pieces misplaced")
	}
}
