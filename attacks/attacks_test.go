package attacks

import (
	"testing"

	"github.com/treepeck/shogi/bitboard"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

func init() {
	Init()
}

func sq(file, rank int) square.Square {
	s, _ := square.New(file, rank)
	return s
}

func TestRookAttackEmptyBoard(t *testing.T) {
	origin := sq(4, 4)
	atk := RookAttack(origin, bitboard.Empty)
	if atk.Count() != 16 {
		t.Fatalf("rook from center on empty board attacks %d squares, want 16", atk.Count())
	}
	if atk.Has(origin) {
		t.Fatalf("rook attack set must not include its own origin")
	}
}

func TestRookAttackBlocked(t *testing.T) {
	origin := sq(4, 4)
	blocker := sq(4, 6)
	occ := bitboard.Of(blocker)
	atk := RookAttack(origin, occ)
	if !atk.Has(blocker) {
		t.Fatalf("rook attack must include the blocking square itself")
	}
	beyond := sq(4, 7)
	if atk.Has(beyond) {
		t.Fatalf("rook attack must not see past a blocker")
	}
}

func TestBishopAttackCorner(t *testing.T) {
	origin := sq(0, 0)
	atk := BishopAttack(origin, bitboard.Empty)
	if atk.Count() != 8 {
		t.Fatalf("bishop from corner on empty board attacks %d squares, want 8", atk.Count())
	}
	for i := 1; i <= 8; i++ {
		if !atk.Has(sq(i, i)) {
			t.Fatalf("bishop from (0,0) should see diagonal square (%d,%d)", i, i)
		}
	}
}

func TestLanceAttackForward(t *testing.T) {
	origin := sq(4, 6)
	atk := LanceAttack(piece.Black, origin, bitboard.Empty)
	if atk.Count() != 6 {
		t.Fatalf("black lance from rank 6 on empty board attacks %d squares, want 6", atk.Count())
	}
	if atk.Has(sq(4, 7)) || atk.Has(sq(4, 8)) {
		t.Fatalf("black lance must never attack backward")
	}
	if !atk.Has(sq(4, 0)) {
		t.Fatalf("black lance on an empty file should reach the far edge")
	}
}

func TestLanceAttackBlocked(t *testing.T) {
	origin := sq(4, 6)
	blocker := sq(4, 3)
	atk := LanceAttack(piece.Black, origin, bitboard.Of(blocker))
	if !atk.Has(blocker) {
		t.Fatalf("lance attack must include the blocking square")
	}
	if atk.Has(sq(4, 2)) {
		t.Fatalf("lance attack must not see past a blocker")
	}
}

func TestLanceColorsAreMirrored(t *testing.T) {
	origin := sq(4, 4)
	black := LanceAttack(piece.Black, origin, bitboard.Empty)
	white := LanceAttack(piece.White, origin, bitboard.Empty)
	if black.And(white).IsAny() {
		t.Fatalf("black and white lance attacks from the same square must not overlap")
	}
	if black.Count() != 4 || white.Count() != 4 {
		t.Fatalf("lance from the middle rank should see 4 squares each way, got black=%d white=%d",
			black.Count(), white.Count())
	}
}

func TestPawnAttackSingleForwardSquare(t *testing.T) {
	origin := sq(4, 4)
	black := AttacksFrom(piece.Pawn, piece.Black, origin)
	if black.Count() != 1 || !black.Has(sq(4, 3)) {
		t.Fatalf("black pawn from rank 4 should attack only rank 3, got %v", black)
	}
	white := AttacksFrom(piece.Pawn, piece.White, origin)
	if white.Count() != 1 || !white.Has(sq(4, 5)) {
		t.Fatalf("white pawn from rank 4 should attack only rank 5, got %v", white)
	}
}

func TestKingAttackSameForBothColors(t *testing.T) {
	origin := sq(4, 4)
	black := AttacksFrom(piece.King, piece.Black, origin)
	white := AttacksFrom(piece.King, piece.White, origin)
	if black != white {
		t.Fatalf("king attack pattern must not depend on color")
	}
	if black.Count() != 8 {
		t.Fatalf("king in the center attacks %d squares, want 8", black.Count())
	}
}

func TestGoldAttackCount(t *testing.T) {
	origin := sq(4, 4)
	gold := AttacksFrom(piece.Gold, piece.Black, origin)
	if gold.Count() != 6 {
		t.Fatalf("gold in the center attacks %d squares, want 6", gold.Count())
	}
}

func TestKnightAttackOnlyTwoForwardSquares(t *testing.T) {
	origin := sq(4, 4)
	black := AttacksFrom(piece.Knight, piece.Black, origin)
	if black.Count() != 2 {
		t.Fatalf("knight attacks %d squares, want 2", black.Count())
	}
	if !black.Has(sq(3, 2)) || !black.Has(sq(5, 2)) {
		t.Fatalf("black knight from (4,4) should attack (3,2) and (5,2), got %v", black)
	}
}

func TestBetweenColinear(t *testing.T) {
	a, b := sq(0, 0), sq(0, 4)
	between := Between(a, b)
	if between.Count() != 3 {
		t.Fatalf("Between on the same file 4 ranks apart has %d squares, want 3", between.Count())
	}
	for r := 1; r <= 3; r++ {
		if !between.Has(sq(0, r)) {
			t.Fatalf("Between(%v, %v) should include (0, %d)", a, b, r)
		}
	}
}

func TestBetweenDiagonal(t *testing.T) {
	a, b := sq(0, 0), sq(3, 3)
	between := Between(a, b)
	if between.Count() != 2 {
		t.Fatalf("Between on a diagonal 3 apart has %d squares, want 2", between.Count())
	}
}

func TestBetweenNonColinearIsEmpty(t *testing.T) {
	a, b := sq(0, 0), sq(1, 5)
	if Between(a, b).IsAny() {
		t.Fatalf("Between of non-colinear squares must be empty")
	}
}

func TestPromoteZoneSize(t *testing.T) {
	if PromoteZone(piece.Black).Count() != 27 {
		t.Fatalf("promotion zone has %d squares, want 27", PromoteZone(piece.Black).Count())
	}
	if PromoteZone(piece.Black).And(PromoteZone(piece.White)).IsAny() {
		t.Fatalf("black and white promotion zones must not overlap")
	}
}
