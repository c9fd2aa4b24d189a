package rules_test

import (
	"testing"

	"chessmate/pkg/rules"
)

func TestCheckmateFoolsMate(t *testing.T) {
	// Fool's mate: Black just played Qh4#, White to move and is checkmated.
	p := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !p.InCheck(rules.White) {
		t.Fatal("expected White to be in check")
	}
	if p.HasLegalMoves() {
		t.Fatal("expected no legal moves for White in mate")
	}
	if got := p.Status(); got != rules.Checkmate {
		t.Fatalf("status: got %v want checkmate", got)
	}
}

func TestStalemateBasic(t *testing.T) {
	// Classic stalemate: Black to move with no legal moves and not in check.
	p := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if p.InCheck(rules.Black) {
		t.Fatal("expected Black not in check")
	}
	if p.HasLegalMoves() {
		t.Fatal("expected no legal moves for Black in stalemate")
	}
	if got := p.Status(); got != rules.Stalemate {
		t.Fatalf("status: got %v want stalemate", got)
	}
}

func TestMateInOneMakeAndDetect(t *testing.T) {
	// White to move: Qxg7# with the bishop on c3 protecting g7.
	p := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")

	var mate rules.Move
	found := false
	for _, m := range rules.LegalMoves(p) {
		if m.String() == "g6g7" {
			mate = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected Qxg7 among legal moves")
	}

	next := p.Apply(mate)
	if got := next.Status(); got != rules.Checkmate {
		t.Fatalf("status after Qxg7: got %v want checkmate", got)
	}
	if !next.InCheck(rules.Black) {
		t.Fatal("expected Black in check after Qxg7")
	}
}

func TestStatusInProgress(t *testing.T) {
	if got := rules.Start().Status(); got != rules.InProgress {
		t.Fatalf("starting position status: got %v want in progress", got)
	}
}
