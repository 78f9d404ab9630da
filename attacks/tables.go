// Package attacks implements the one-time-initialised attack-table factory:
// a family of precomputed lookup tables that, given a piece type, color,
// origin square, and occupancy, return the set of squares attacked.
//
// Sliding pieces (rook, bishop, lance) are indexed with a software
// parallel-bit-extract (PEXT) scheme over masked occupancies, following
// the design of the original Rust position engine this module was ported
// from, which in turn relies on the hardware BMI2 PEXT instruction where
// available. Go has no such intrinsic and no PEXT library appears anywhere
// in this codebase's reference corpus, so pext64 below is a hand-written
// bit-extraction loop (see pext.go).
package attacks

import (
	"github.com/treepeck/shogi/bitboard"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

// FileBB[f] has every square of file f set; RankBB[r] has every square of
// rank r set.
var (
	FileBB [9]bitboard.Bitboard
	RankBB [9]bitboard.Bitboard
)

// fullBB has all 81 squares set.
var fullBB bitboard.Bitboard

// inFrontBB[color][rank] has every square strictly more forward, from
// color's perspective, than the given rank: ranks with smaller index for
// Black, ranks with larger index for White.
var inFrontBB [2][9]bitboard.Bitboard

// promoteZoneBB[color] has the three furthest ranks from color's own side.
var promoteZoneBB [2]bitboard.Bitboard

func buildGeometry() {
	fullBB = bitboard.Empty
	for s := 0; s < square.NumSquares; s++ {
		sq := square.Square(s)
		FileBB[sq.File()] = FileBB[sq.File()].Set(sq)
		RankBB[sq.Rank()] = RankBB[sq.Rank()].Set(sq)
		fullBB = fullBB.Set(sq)
	}

	for _, c := range piece.Colors {
		for r := 0; r < 9; r++ {
			var bb bitboard.Bitboard
			for r2 := 0; r2 < 9; r2++ {
				if isMoreForward(c, r2, r) {
					bb = bb.Or(RankBB[r2])
				}
			}
			inFrontBB[c.Index()][r] = bb
		}
	}

	for _, c := range piece.Colors {
		var zone bitboard.Bitboard
		for r := 0; r < 9; r++ {
			// relativeRank < 3 means r (Black) or 8-r (White) < 3.
			rr := r
			if !c.IsBlack() {
				rr = 8 - r
			}
			if rr < 3 {
				zone = zone.Or(RankBB[r])
			}
		}
		promoteZoneBB[c.Index()] = zone
	}
}

// isMoreForward reports whether rank r2 is strictly more forward than rank
// r from color's perspective: toward decreasing index for Black, toward
// increasing index for White.
func isMoreForward(c piece.Color, r2, r int) bool {
	if c.IsBlack() {
		return r2 < r
	}
	return r2 > r
}

// PromoteZone returns the promotion-zone bitboard for the given color.
func PromoteZone(c piece.Color) bitboard.Bitboard { return promoteZoneBB[c.Index()] }
