package bitboard

import "testing"

func TestScanLow64(t *testing.T) {
	cases := []struct {
		lane uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{1 << 63, 63},
		{0b1010000, 4},
	}
	for _, c := range cases {
		if got := ScanLow64(c.lane); got != c.want {
			t.Fatalf("ScanLow64(%#x) = %d, want %d", c.lane, got, c.want)
		}
	}
}

func TestScanLow64Empty(t *testing.T) {
	if got := ScanLow64(0); got != 0 {
		t.Fatalf("ScanLow64(0) = %d, want 0", got)
	}
}

func TestPopLow64(t *testing.T) {
	lane := uint64(0b1011000)
	var got []int
	for lane != 0 {
		got = append(got, PopLow64(&lane))
	}
	want := []int{3, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("popped %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("popped %v, want %v", got, want)
		}
	}
}
