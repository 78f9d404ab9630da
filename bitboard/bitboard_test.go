package bitboard

import (
	"testing"

	"github.com/treepeck/shogi/square"
)

func TestSetHasClear(t *testing.T) {
	var b Bitboard
	for i := 0; i < square.NumSquares; i++ {
		sq := square.Square(i)
		b = b.Set(sq)
		if !b.Has(sq) {
			t.Fatalf("square %d should be set", i)
		}
	}
	if b.Count() != square.NumSquares {
		t.Fatalf("Count() = %d, want %d", b.Count(), square.NumSquares)
	}
	for i := 0; i < square.NumSquares; i++ {
		sq := square.Square(i)
		b = b.ClearAt(sq)
		if b.Has(sq) {
			t.Fatalf("square %d should be cleared", i)
		}
	}
	if !b.IsEmpty() {
		t.Fatalf("b should be empty after clearing every square")
	}
}

func TestLaneSplitBoundary(t *testing.T) {
	lo := square.Square(laneSplit - 1)
	hi := square.Square(laneSplit)
	if Of(lo).Hi != 0 || Of(lo).Lo == 0 {
		t.Fatalf("square %d should live in lane 0", lo)
	}
	if Of(hi).Lo != 0 || Of(hi).Hi == 0 {
		t.Fatalf("square %d should live in lane 1", hi)
	}
}

func TestNotIsComplementWithinUniverse(t *testing.T) {
	b := Of(square.Square(0)).Or(Of(square.Square(80)))
	comp := b.Not()
	if comp.Count() != square.NumSquares-2 {
		t.Fatalf("Not() left %d squares, want %d", comp.Count(), square.NumSquares-2)
	}
	if comp.And(b).IsAny() {
		t.Fatalf("a bitboard and its complement must not intersect")
	}
}

func TestPopAscending(t *testing.T) {
	b := Of(square.Square(5)).Or(Of(square.Square(70))).Or(Of(square.Square(40)))
	var got []int
	for b.IsAny() {
		got = append(got, int(b.Pop()))
	}
	want := []int{5, 40, 70}
	if len(got) != len(want) {
		t.Fatalf("popped %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("popped %v, want %v", got, want)
		}
	}
}

func TestSquaresNonDestructive(t *testing.T) {
	b := Of(square.Square(1)).Or(Of(square.Square(2)))
	squares := b.Squares()
	if len(squares) != 2 {
		t.Fatalf("Squares() returned %d entries, want 2", len(squares))
	}
	if b.Count() != 2 {
		t.Fatalf("Squares() should not mutate b, Count() = %d", b.Count())
	}
}

func TestMergeOverlaysLanesAtSameBit(t *testing.T) {
	lane0 := Of(square.Square(0))
	lane1 := Of(square.Square(laneSplit))
	merged := lane0.Or(lane1).Merge()
	if merged != 1 {
		t.Fatalf("Merge() of square 0 and square %d = %#x, want 1", laneSplit, merged)
	}
}
