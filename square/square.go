// Package square defines board coordinates for the 9x9 Shogi board.
package square

import "fmt"

// Square identifies one of the 81 cells of a Shogi board. The zero value
// is the square at file 0, rank 0 (SFEN "1a").
//
// Encoding: index = file*9 + rank, file and rank both in [0, 8]. File 0 is
// the board's rightmost file from Black's viewpoint (SFEN file digit "1"),
// so SFEN file digit d is file d-1; SFEN board rows list files 9 down to
// 1, i.e. file 8 down to file 0.
type Square int8

// None is used where no square is a valid answer (e.g. a king absent from
// the board).
const None Square = -1

// NumSquares is the size of the board.
const NumSquares = 81

// New builds the square at the given file/rank, both zero-based in [0, 8].
// It reports false if either coordinate is out of range.
func New(file, rank int) (Square, bool) {
	if file < 0 || file > 8 || rank < 0 || rank > 8 {
		return None, false
	}
	return Square(file*9 + rank), true
}

// File returns the zero-based file, in [0, 8].
func (s Square) File() int { return int(s) / 9 }

// Rank returns the zero-based rank, in [0, 8].
func (s Square) Rank() int { return int(s) % 9 }

// IsValid reports whether s names one of the 81 board squares.
func (s Square) IsValid() bool { return s >= 0 && int(s) < NumSquares }

// Shift returns the square df files and dr ranks away from s, and whether
// the result still lies on the board.
func (s Square) Shift(df, dr int) (Square, bool) {
	return New(s.File()+df, s.Rank()+dr)
}

// RelativeRank returns the rank as seen by the given side: unchanged when
// isBlack is true, mirrored (8-rank) otherwise. The square package takes a
// plain bool rather than a piece.Color, so it does not import the piece
// package.
func (s Square) RelativeRank(isBlack bool) int {
	if isBlack {
		return s.Rank()
	}
	return 8 - s.Rank()
}

// InPromotionZone reports whether s lies in the furthest three ranks from
// the given side's starting edge.
func (s Square) InPromotionZone(isBlack bool) bool {
	return s.RelativeRank(isBlack) < 3
}

const (
	asciiDigit1 = '1'
	asciiDigit9 = '9'
	asciiLowerA = 'a'
	asciiLowerI = 'i'
)

// Parse reads a SFEN square, e.g. "5e", and reports whether s was
// well-formed.
func Parse(s string) (Square, bool) {
	if len(s) != 2 {
		return None, false
	}
	file, rank := s[0], s[1]
	if file < asciiDigit1 || file > asciiDigit9 || rank < asciiLowerA || rank > asciiLowerI {
		return None, false
	}
	return New(int(file-asciiDigit1), int(rank-asciiLowerA))
}

// String renders s in SFEN notation, e.g. "5e".
func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("invalid(%d)", int(s))
	}
	return string([]byte{
		byte(asciiDigit1) + byte(s.File()),
		byte(asciiLowerA) + byte(s.Rank()),
	})
}

// All returns the 81 squares in ascending index order.
func All() []Square {
	out := make([]Square, NumSquares)
	for i := range out {
		out[i] = Square(i)
	}
	return out
}
