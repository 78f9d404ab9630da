package attacks

import (
	"math/bits"

	"github.com/treepeck/shogi/bitboard"
	"github.com/treepeck/shogi/square"
)

type direction struct{ df, dr int }

var rookDirs = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rayWalk ray-walks origin in each of dirs, stopping at (and including)
// the first square occupied in occ, and never leaving the board.
func rayWalk(origin square.Square, dirs [4]direction, occ bitboard.Bitboard) bitboard.Bitboard {
	var result bitboard.Bitboard
	for _, d := range dirs {
		cur := origin
		for {
			next, ok := cur.Shift(d.df, d.dr)
			if !ok {
				break
			}
			result = result.Set(next)
			if occ.Has(next) {
				break
			}
			cur = next
		}
	}
	return result
}

// blockMask returns the block mask for a slider moving along dirs from
// origin: every square strictly between origin and the board edge in each
// direction, excluding the edge square itself (occupancy on the edge
// cannot change the attack set, since the ray is bounded by the board
// there regardless).
func blockMask(origin square.Square, dirs [4]direction) bitboard.Bitboard {
	var mask bitboard.Bitboard
	for _, d := range dirs {
		cur := origin
		for {
			next, ok := cur.Shift(d.df, d.dr)
			if !ok {
				break
			}
			if _, hasNext := next.Shift(d.df, d.dr); !hasNext {
				// next is the edge square in this direction: excluded.
				break
			}
			mask = mask.Set(next)
			cur = next
		}
	}
	return mask
}

// maskSquaresInMergedOrder returns mask's squares in the same order pext64
// visits mask.Merge()'s set bits: ascending bit position of the merged
// 64-bit word. A block mask never sets both lane0 bit p and lane1 bit p
// for the same p (the lanes' contributions to a single slider's mask never
// land on the same merged position), so each position names exactly one
// square.
func maskSquaresInMergedOrder(mask bitboard.Bitboard) []square.Square {
	var out []square.Square
	lo, hi := mask.Lo, mask.Hi
	merged := lo | hi
	for merged != 0 {
		lsb := merged & (-merged)
		pos := bits.TrailingZeros64(lsb)
		if lo&lsb != 0 {
			out = append(out, square.Square(pos))
		} else {
			out = append(out, square.Square(pos+63))
		}
		merged &= merged - 1
	}
	return out
}

// occupiedFromIndex expands a PEXT-style index into an occupancy bitboard
// by walking mask's squares in merged bit-position order, setting the k-th
// one iff bit k of index is set — the exact inverse of pext64(occ.Merge(),
// mask.Merge()) for any occ already confined to mask.
func occupiedFromIndex(index int, mask bitboard.Bitboard) bitboard.Bitboard {
	var occ bitboard.Bitboard
	for k, sq := range maskSquaresInMergedOrder(mask) {
		if index&(1<<uint(k)) != 0 {
			occ = occ.Set(sq)
		}
	}
	return occ
}
