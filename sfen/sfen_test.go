package sfen

import (
	"errors"
	"testing"

	"github.com/treepeck/shogi/hand"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

const startpos = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

func TestParseBoardRoundTrip(t *testing.T) {
	b, err := ParseBoard("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL")
	if err != nil {
		t.Fatalf("ParseBoard returned an error: %v", err)
	}
	if got := FormatBoard(b); got != "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL" {
		t.Fatalf("FormatBoard round trip mismatch, got %q", got)
	}
}

func TestParseBoardPromoted(t *testing.T) {
	b, err := ParseBoard("9/9/9/9/4+P4/9/9/9/9")
	if err != nil {
		t.Fatalf("ParseBoard returned an error: %v", err)
	}
	sq, _ := square.New(4, 4)
	p := b[sq]
	if p == nil || p.Type != piece.ProPawn {
		t.Fatalf("expected a promoted pawn at the center, got %v", p)
	}
}

func TestParseBoardWrongRankCount(t *testing.T) {
	if _, err := ParseBoard("9/9/9"); !errors.Is(err, ErrIllegalBoardState) {
		t.Fatalf("ParseBoard with too few ranks should return ErrIllegalBoardState, got %v", err)
	}
}

func TestParseBoardOverfullRank(t *testing.T) {
	if _, err := ParseBoard("9/9/9/9/9/9/9/9/9p"); !errors.Is(err, ErrIllegalBoardState) {
		t.Fatalf("a 10th piece on one rank should return ErrIllegalBoardState, got %v", err)
	}
}

func TestParseSide(t *testing.T) {
	if c, err := ParseSide("b"); err != nil || c != piece.Black {
		t.Fatalf("ParseSide(\"b\") = %v, %v, want Black, nil", c, err)
	}
	if c, err := ParseSide("w"); err != nil || c != piece.White {
		t.Fatalf("ParseSide(\"w\") = %v, %v, want White, nil", c, err)
	}
	if _, err := ParseSide("x"); !errors.Is(err, ErrIllegalSideToMove) {
		t.Fatalf("ParseSide(\"x\") should return ErrIllegalSideToMove, got %v", err)
	}
}

func TestParseHandEmpty(t *testing.T) {
	h, err := ParseHand("-")
	if err != nil {
		t.Fatalf("ParseHand(\"-\") returned an error: %v", err)
	}
	if FormatHand(h) != "-" {
		t.Fatalf("FormatHand of an empty hand should be \"-\"")
	}
}

func TestParseHandCounts(t *testing.T) {
	h, err := ParseHand("2P3p")
	if err != nil {
		t.Fatalf("ParseHand returned an error: %v", err)
	}
	if got := h.Get(piece.Piece{Type: piece.Pawn, Color: piece.Black}); got != 2 {
		t.Fatalf("black pawns in hand = %d, want 2", got)
	}
	if got := h.Get(piece.Piece{Type: piece.Pawn, Color: piece.White}); got != 3 {
		t.Fatalf("white pawns in hand = %d, want 3", got)
	}
}

func TestFormatHandOrderIsRBGSNLP(t *testing.T) {
	var h hand.Hand
	h.Increment(piece.Piece{Type: piece.Pawn, Color: piece.Black})
	h.Increment(piece.Piece{Type: piece.Rook, Color: piece.Black})
	if got, want := FormatHand(h), "RP"; got != want {
		t.Fatalf("FormatHand() = %q, want %q", got, want)
	}
}

func TestParseHandInvalidLetter(t *testing.T) {
	if _, err := ParseHand("2X"); !errors.Is(err, ErrIllegalPieceType) {
		t.Fatalf("ParseHand with an unknown letter should return ErrIllegalPieceType, got %v", err)
	}
}

func TestParseFullRoundTrip(t *testing.T) {
	pos, err := Parse(startpos)
	if err != nil {
		t.Fatalf("Parse returned an error: %v", err)
	}
	if got := Format(pos); got != startpos {
		t.Fatalf("Format round trip mismatch:\n got  %q\n want %q", got, startpos)
	}
}

func TestParseMissingFields(t *testing.T) {
	if _, err := Parse("lnsgkgsnl/9/9/9/9/9/9/9/LNSGKGSNL b -"); !errors.Is(err, ErrMissingDataFields) {
		t.Fatalf("Parse with 3 fields should return ErrMissingDataFields, got %v", err)
	}
}

func TestParseBadMoveCount(t *testing.T) {
	if _, err := Parse("9/9/9/9/9/9/9/9/9 b - x"); !errors.Is(err, ErrIllegalMoveCount) {
		t.Fatalf("Parse with a non-numeric move count should return ErrIllegalMoveCount, got %v", err)
	}
}
