package attacks

import (
	"sync"

	"github.com/treepeck/shogi/bitboard"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

var (
	rookBlockMask  [square.NumSquares]bitboard.Bitboard
	rookAttackIdx  [square.NumSquares]int
	rookBlockBits  [square.NumSquares]int
	rookAttackBB   []bitboard.Bitboard

	bishopBlockMask [square.NumSquares]bitboard.Bitboard
	bishopAttackIdx [square.NumSquares]int
	bishopBlockBits [square.NumSquares]int
	bishopAttackBB  []bitboard.Bitboard

	// lanceAttackBB is indexed [color][origin][7-bit interior-file occupancy].
	lanceAttackBB [2][square.NumSquares][128]bitboard.Bitboard

	// attackBB holds the occupancy-independent attack pattern for every
	// non-sliding piece type; slider entries are left empty and unused.
	attackBB [piece.NumPieceTypes][2][square.NumSquares]bitboard.Bitboard

	betweenBB [square.NumSquares][square.NumSquares]bitboard.Bitboard
)

var once sync.Once

// Init populates every attack table. It is idempotent and safe to call
// from multiple goroutines; the first caller does the work, everyone else
// blocks until it finishes. The query functions in this package do not
// call Init themselves; position.SetSFEN calls it before building a
// Position, and any other caller must call Init before the first query.
func Init() {
	once.Do(func() {
		buildGeometry()
		buildSliderTables(rookDirs, &rookBlockMask, &rookAttackIdx, &rookBlockBits, &rookAttackBB)
		buildSliderTables(bishopDirs, &bishopBlockMask, &bishopAttackIdx, &bishopBlockBits, &bishopAttackBB)
		buildLanceTable()
		buildSteppers()
		buildBetween()
	})
}

func buildSliderTables(dirs [4]direction, blockMaskTable *[square.NumSquares]bitboard.Bitboard,
	attackIdx *[square.NumSquares]int, blockBits *[square.NumSquares]int, attackBBOut *[]bitboard.Bitboard) {
	for s := 0; s < square.NumSquares; s++ {
		origin := square.Square(s)
		mask := blockMask(origin, dirs)
		blockMaskTable[s] = mask
		bits := mask.Count()
		blockBits[s] = bits
		attackIdx[s] = len(*attackBBOut)
		n := 1 << uint(bits)
		for i := 0; i < n; i++ {
			occ := occupiedFromIndex(i, mask)
			atk := rayWalk(origin, dirs, occ)
			*attackBBOut = append(*attackBBOut, atk)
		}
	}
}

func buildLanceTable() {
	for _, c := range piece.Colors {
		for s := 0; s < square.NumSquares; s++ {
			origin := square.Square(s)
			file := origin.File()
			for idx := 0; idx < 128; idx++ {
				occ := lanceOccupancy(file, idx)
				atk := rayWalk(origin, rookDirs, occ)
				lanceAttackBB[c.Index()][s][idx] = atk.And(inFrontBB[c.Index()][origin.Rank()])
			}
		}
	}
}

// lanceOccupancy expands a 7-bit index into an occupancy bitboard over the
// interior ranks (1 through 7) of the given file.
func lanceOccupancy(file, idx int) bitboard.Bitboard {
	var occ bitboard.Bitboard
	for k := 0; k < 7; k++ {
		if idx&(1<<uint(k)) != 0 {
			sq, _ := square.New(file, k+1)
			occ = occ.Set(sq)
		}
	}
	return occ
}

// lanceOccupancyIndex is the inverse of lanceOccupancy: given the global
// occupied bitboard and a file, packs the occupancy of that file's 7
// interior ranks into a 7-bit index.
func lanceOccupancyIndex(file int, occ bitboard.Bitboard) int {
	idx := 0
	for k := 0; k < 7; k++ {
		sq, _ := square.New(file, k+1)
		if occ.Has(sq) {
			idx |= 1 << uint(k)
		}
	}
	return idx
}

func buildSteppers() {
	for s := 0; s < square.NumSquares; s++ {
		origin := square.Square(s)
		king := rayWalk(origin, rookDirs, fullBB).Or(rayWalk(origin, bishopDirs, fullBB))
		attackBB[piece.King.Index()][piece.Black.Index()][s] = king
		attackBB[piece.King.Index()][piece.White.Index()][s] = king

		rookNeighbors := rayWalk(origin, rookDirs, fullBB)
		bishopNeighbors := rayWalk(origin, bishopDirs, fullBB)

		for _, c := range piece.Colors {
			forward := inFrontBB[c.Index()][origin.Rank()]
			gold := king.And(forward).Or(rookNeighbors)
			silver := king.And(forward).Or(bishopNeighbors)
			pawn := silver.Xor(bishopNeighbors)

			var knight bitboard.Bitboard
			if pawn.IsAny() {
				pawnSq := pawnTarget(pawn)
				knightNeighbors := rayWalk(pawnSq, bishopDirs, fullBB)
				knight = knightNeighbors.And(forward)
			}

			attackBB[piece.Gold.Index()][c.Index()][s] = gold
			attackBB[piece.ProSilver.Index()][c.Index()][s] = gold
			attackBB[piece.ProKnight.Index()][c.Index()][s] = gold
			attackBB[piece.ProLance.Index()][c.Index()][s] = gold
			attackBB[piece.ProPawn.Index()][c.Index()][s] = gold
			attackBB[piece.Silver.Index()][c.Index()][s] = silver
			attackBB[piece.Pawn.Index()][c.Index()][s] = pawn
			attackBB[piece.Knight.Index()][c.Index()][s] = knight
		}
	}
}

// pawnTarget returns the single square set in a one-square bitboard.
func pawnTarget(bb bitboard.Bitboard) square.Square {
	clone := bb
	return clone.Pop()
}

func buildBetween() {
	for a := 0; a < square.NumSquares; a++ {
		for b := 0; b < square.NumSquares; b++ {
			if a == b {
				continue
			}
			sa, sb := square.Square(a), square.Square(b)
			if sa.File() == sb.File() || sa.Rank() == sb.Rank() {
				between := RookAttack(sa, bitboard.Of(sb)).And(RookAttack(sb, bitboard.Of(sa)))
				betweenBB[a][b] = between
			} else if onSameDiagonal(sa, sb) {
				between := BishopAttack(sa, bitboard.Of(sb)).And(BishopAttack(sb, bitboard.Of(sa)))
				betweenBB[a][b] = between
			}
		}
	}
}

func onSameDiagonal(a, b square.Square) bool {
	df := a.File() - b.File()
	dr := a.Rank() - b.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == dr
}

// RookAttack returns the rook's attack set from sq given the occupancy occ.
func RookAttack(sq square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	masked := occ.And(rookBlockMask[sq])
	idx := pext64(masked.Merge(), rookBlockMask[sq].Merge())
	return rookAttackBB[rookAttackIdx[sq]+int(idx)]
}

// BishopAttack returns the bishop's attack set from sq given occ.
func BishopAttack(sq square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	masked := occ.And(bishopBlockMask[sq])
	idx := pext64(masked.Merge(), bishopBlockMask[sq].Merge())
	return bishopAttackBB[bishopAttackIdx[sq]+int(idx)]
}

// LanceAttack returns color's lance attack set from sq given occ.
func LanceAttack(c piece.Color, sq square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	idx := lanceOccupancyIndex(sq.File(), occ)
	return lanceAttackBB[c.Index()][sq][idx]
}

// AttacksFrom returns the occupancy-independent attack set for a
// non-sliding piece type, color and origin. Calling it for Rook, Bishop or
// Lance returns an unused, empty table entry; use RookAttack/BishopAttack/
// LanceAttack for those.
func AttacksFrom(pt piece.PieceType, c piece.Color, sq square.Square) bitboard.Bitboard {
	return attackBB[pt.Index()][c.Index()][sq]
}

// Between returns the squares strictly between a and b if they are
// rook-colinear or bishop-colinear, empty otherwise.
func Between(a, b square.Square) bitboard.Bitboard {
	return betweenBB[a][b]
}
