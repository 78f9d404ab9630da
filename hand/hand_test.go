package hand

import "testing"

import "github.com/treepeck/shogi/piece"

func TestIncrementDecrementGet(t *testing.T) {
	var h Hand
	p := piece.Piece{Type: piece.Pawn, Color: piece.Black}
	if h.Get(p) != 0 {
		t.Fatalf("fresh hand should hold 0 pawns")
	}
	h.Increment(p)
	h.Increment(p)
	if h.Get(p) != 2 {
		t.Fatalf("Get() = %d after two increments, want 2", h.Get(p))
	}
	h.Decrement(p)
	if h.Get(p) != 1 {
		t.Fatalf("Get() = %d after a decrement, want 1", h.Get(p))
	}
}

func TestSetOverwrites(t *testing.T) {
	var h Hand
	p := piece.Piece{Type: piece.Rook, Color: piece.White}
	h.Set(p, 3)
	if h.Get(p) != 3 {
		t.Fatalf("Get() = %d after Set(3), want 3", h.Get(p))
	}
	h.Set(p, 1)
	if h.Get(p) != 1 {
		t.Fatalf("Get() = %d after Set(1), want 1", h.Get(p))
	}
}

func TestColorsAreIndependent(t *testing.T) {
	var h Hand
	black := piece.Piece{Type: piece.Silver, Color: piece.Black}
	white := piece.Piece{Type: piece.Silver, Color: piece.White}
	h.Increment(black)
	if h.Get(white) != 0 {
		t.Fatalf("incrementing black's silver must not affect white's")
	}
}

func TestNonDroppableTypesAreNoops(t *testing.T) {
	var h Hand
	king := piece.Piece{Type: piece.King, Color: piece.Black}
	h.Increment(king)
	h.Set(king, 5)
	if h.Get(king) != 0 {
		t.Fatalf("a king can never sit in hand, Get() should stay 0")
	}
}

func TestClear(t *testing.T) {
	var h Hand
	p := piece.Piece{Type: piece.Pawn, Color: piece.Black}
	h.Increment(p)
	h.Clear()
	if h.Get(p) != 0 {
		t.Fatalf("Clear() should empty the hand")
	}
}

func TestDroppableTypesOrder(t *testing.T) {
	want := [7]piece.PieceType{
		piece.Rook, piece.Bishop, piece.Gold, piece.Silver,
		piece.Knight, piece.Lance, piece.Pawn,
	}
	got := DroppableTypes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DroppableTypes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
