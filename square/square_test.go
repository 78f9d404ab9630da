package square

import "testing"

func TestNewRoundTrip(t *testing.T) {
	for file := 0; file < 9; file++ {
		for rank := 0; rank < 9; rank++ {
			sq, ok := New(file, rank)
			if !ok {
				t.Fatalf("New(%d, %d) reported false", file, rank)
			}
			if sq.File() != file || sq.Rank() != rank {
				t.Fatalf("New(%d, %d) -> %v, got File=%d Rank=%d", file, rank, sq, sq.File(), sq.Rank())
			}
		}
	}
}

func TestNewOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}}
	for _, c := range cases {
		if _, ok := New(c[0], c[1]); ok {
			t.Fatalf("New(%d, %d) should report false", c[0], c[1])
		}
	}
}

func TestParseString(t *testing.T) {
	cases := []struct {
		s          string
		file, rank int
	}{
		{"9a", 8, 0},
		{"5e", 4, 4},
		{"1i", 0, 8},
	}
	for _, c := range cases {
		sq, ok := Parse(c.s)
		if !ok {
			t.Fatalf("Parse(%q) reported false", c.s)
		}
		if sq.File() != c.file || sq.Rank() != c.rank {
			t.Fatalf("Parse(%q) -> File=%d Rank=%d, want File=%d Rank=%d", c.s, sq.File(), sq.Rank(), c.file, c.rank)
		}
		if got := sq.String(); got != c.s {
			t.Fatalf("String() -> %q, want %q", got, c.s)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "5", "5z", "0e", "9j", "abc"} {
		if _, ok := Parse(s); ok {
			t.Fatalf("Parse(%q) should report false", s)
		}
	}
}

func TestRelativeRank(t *testing.T) {
	sq, _ := New(0, 2)
	if sq.RelativeRank(true) != 2 {
		t.Fatalf("black relative rank: got %d, want 2", sq.RelativeRank(true))
	}
	if sq.RelativeRank(false) != 6 {
		t.Fatalf("white relative rank: got %d, want 6", sq.RelativeRank(false))
	}
}

func TestInPromotionZone(t *testing.T) {
	sq, _ := New(0, 2)
	if !sq.InPromotionZone(true) {
		t.Fatalf("rank 2 should be in black's promotion zone")
	}
	if sq.InPromotionZone(false) {
		t.Fatalf("rank 2 should not be in white's promotion zone")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != NumSquares {
		t.Fatalf("All() returned %d squares, want %d", len(all), NumSquares)
	}
	for i, sq := range all {
		if int(sq) != i {
			t.Fatalf("All()[%d] = %v, want %d", i, sq, i)
		}
	}
}
