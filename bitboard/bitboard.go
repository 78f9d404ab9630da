// Package bitboard implements the 81-square set type used throughout the
// engine, split across two 64-bit lanes the way the teacher's chess
// bitboards split a 64-square board across one lane, generalised here to a
// pair of lanes because 81 squares do not fit a single machine word.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/treepeck/shogi/square"
)

// laneSplit is the index at which a square moves from lane 0 into lane 1.
// Lane 0 holds squares with index < laneSplit (63 of them, files 1-7 in
// SFEN numbering); lane 1 holds the remaining 18 squares (files 8-9).
const laneSplit = 63

// Bitboard is a set of board squares, value-typed like the teacher's
// uint64 boards so it can be copied, compared and passed by value freely.
type Bitboard struct {
	Lo uint64 // squares [0, 63)
	Hi uint64 // squares [63, 81), bit k holds square 63+k
}

// Empty is the zero-value bitboard; named for parity with the other
// constructors below.
var Empty = Bitboard{}

// squareBB is the fixed 81-entry table mapping a square to its singleton
// bitboard, populated once at package init time.
var squareBB [square.NumSquares]Bitboard

func init() {
	for i := 0; i < square.NumSquares; i++ {
		if i < laneSplit {
			squareBB[i] = Bitboard{Lo: 1 << uint(i)}
		} else {
			squareBB[i] = Bitboard{Hi: 1 << uint(i-laneSplit)}
		}
	}
}

// Of returns the singleton bitboard containing only sq.
func Of(sq square.Square) Bitboard {
	return squareBB[sq]
}

// IsAny reports whether any square is set.
func (b Bitboard) IsAny() bool { return b.Lo != 0 || b.Hi != 0 }

// IsEmpty reports whether no square is set.
func (b Bitboard) IsEmpty() bool { return b.Lo == 0 && b.Hi == 0 }

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq square.Square) bool {
	return b.And(Of(sq)).IsAny()
}

// Set returns b with sq added.
func (b Bitboard) Set(sq square.Square) Bitboard { return b.Or(Of(sq)) }

// ClearAt returns b with sq removed.
func (b Bitboard) ClearAt(sq square.Square) Bitboard {
	return b.And(Of(sq).Not())
}

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// And returns the lane-wise intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard { return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi} }

// Or returns the lane-wise union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard { return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi} }

// Xor returns the lane-wise symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard { return Bitboard{b.Lo ^ o.Lo, b.Hi ^ o.Hi} }

// Not returns the complement of b within the 81-square universe; bits
// outside the universe are never set, preserving the "no bit outside the
// 81-square universe is ever observed" invariant.
func (b Bitboard) Not() Bitboard {
	return Bitboard{Lo: ^b.Lo & universe.Lo, Hi: ^b.Hi & universe.Hi}
}

// universe has every one of the 81 valid squares set; only used to mask Not.
var universe = Bitboard{
	Lo: 1<<laneSplit - 1,
	Hi: 1<<(square.NumSquares-laneSplit) - 1,
}

// Merge folds both lanes into a single 64-bit word by OR, used by the PEXT
// index scheme: safe because block masks are themselves split across lanes
// along the same boundary, so lane 0 and lane 1 bits never collide once
// merged for a single mask/occupancy pair.
func (b Bitboard) Merge() uint64 { return b.Lo | b.Hi }

// Pop clears and returns the lowest-indexed set square. The caller must
// ensure b is non-empty; behavior on an empty bitboard is to return
// square.None without modifying b.
func (b *Bitboard) Pop() square.Square {
	if b.Lo != 0 {
		idx := bits.TrailingZeros64(b.Lo)
		b.Lo &= b.Lo - 1
		return square.Square(idx)
	}
	if b.Hi != 0 {
		idx := bits.TrailingZeros64(b.Hi)
		b.Hi &= b.Hi - 1
		return square.Square(idx + laneSplit)
	}
	return square.None
}

// Squares returns every set square in ascending index order, via a
// non-destructive clone-then-pop loop (distilled-spec design note 9
// explicitly allows this instead of a destructive iterator).
func (b Bitboard) Squares() []square.Square {
	out := make([]square.Square, 0, b.Count())
	clone := b
	for clone.IsAny() {
		out = append(out, clone.Pop())
	}
	return out
}

// String renders b as a 9x9 ASCII grid, rank "a" at the top, file 9 on the
// left, matching the teacher's cli.FormatBitboard layout generalised to
// Shogi's coordinate system.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 0; rank < 9; rank++ {
		for file := 8; file >= 0; file-- {
			sq, _ := square.New(file, rank)
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
