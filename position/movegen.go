package position

import (
	"github.com/treepeck/shogi/attacks"
	"github.com/treepeck/shogi/bitboard"
	"github.com/treepeck/shogi/hand"
	"github.com/treepeck/shogi/moves"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

// attacksFrom returns pc's attack set from sq given the board's current
// occupancy, combining the promoted rook/bishop's slide with the king
// step their dragon/horse forms add.
func attacksFrom(pc piece.Piece, sq square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	switch pc.Type {
	case piece.Rook:
		return attacks.RookAttack(sq, occ)
	case piece.ProRook:
		return attacks.RookAttack(sq, occ).Or(attacks.AttacksFrom(piece.King, pc.Color, sq))
	case piece.Bishop:
		return attacks.BishopAttack(sq, occ)
	case piece.ProBishop:
		return attacks.BishopAttack(sq, occ).Or(attacks.AttacksFrom(piece.King, pc.Color, sq))
	case piece.Lance:
		return attacks.LanceAttack(pc.Color, sq, occ)
	default:
		return attacks.AttacksFrom(pc.Type, pc.Color, sq)
	}
}

// directionalTypes lists every piece type whose attack pattern favors its
// own color's forward direction; IsAttackedBy looks these up with the
// attacking color flipped, per the point-symmetry of the pattern tables
// built in the attacks package.
var directionalTypes = [...]piece.PieceType{
	piece.Gold, piece.Silver, piece.Pawn, piece.Knight,
	piece.ProSilver, piece.ProKnight, piece.ProLance, piece.ProPawn,
}

// MoveCandidates returns the squares the piece on sq may move to, ignoring
// whether the move leaves its own king in check. It is empty if sq holds
// no piece.
func (p *Position) MoveCandidates(sq square.Square) bitboard.Bitboard {
	pc, ok := p.PieceAt(sq)
	if !ok {
		return bitboard.Empty
	}
	raw := attacksFrom(pc, sq, p.occupied)
	return raw.And(p.colorBB[pc.Color.Index()].Not())
}

// IsAttackedBy reports whether any piece of color by attacks sq, via the
// super-piece trick: for each piece type, compute what sq would attack if
// it held that type, and test whether that set meets an actual piece of
// that type and color.
func (p *Position) IsAttackedBy(sq square.Square, by piece.Color) bool {
	occ := p.occupied
	owned := func(pt piece.PieceType) bitboard.Bitboard {
		return p.colorBB[by.Index()].And(p.typeBB[pt.Index()])
	}

	if attacks.AttacksFrom(piece.King, piece.Black, sq).And(owned(piece.King)).IsAny() {
		return true
	}
	for _, pt := range directionalTypes {
		src := attacks.AttacksFrom(pt, by.Flip(), sq)
		if src.And(owned(pt)).IsAny() {
			return true
		}
	}

	rookLike := owned(piece.Rook).Or(owned(piece.ProRook))
	if attacks.RookAttack(sq, occ).And(rookLike).IsAny() {
		return true
	}
	bishopLike := owned(piece.Bishop).Or(owned(piece.ProBishop))
	if attacks.BishopAttack(sq, occ).And(bishopLike).IsAny() {
		return true
	}
	dragonHorseStep := owned(piece.ProRook).Or(owned(piece.ProBishop))
	if attacks.AttacksFrom(piece.King, piece.Black, sq).And(dragonHorseStep).IsAny() {
		return true
	}
	if attacks.LanceAttack(by.Flip(), sq, occ).And(owned(piece.Lance)).IsAny() {
		return true
	}
	return false
}

// InCheck reports whether color's king currently stands attacked.
func (p *Position) InCheck(c piece.Color) bool {
	king := p.kingSquare[c.Index()]
	if king == square.None {
		return false
	}
	return p.IsAttackedBy(king, c.Flip())
}

// PinnedBB returns the squares holding a color-owned piece that stands
// between color's king and an enemy slider along that slider's line of
// attack, with no other piece in between — moving it off that line would
// expose the king.
func (p *Position) PinnedBB(c piece.Color) bitboard.Bitboard {
	king := p.kingSquare[c.Index()]
	if king == square.None {
		return bitboard.Empty
	}
	enemy := c.Flip()
	var pinned bitboard.Bitboard

	sliders := p.colorBB[enemy.Index()].And(
		p.typeBB[piece.Rook.Index()].Or(p.typeBB[piece.ProRook.Index()]).
			Or(p.typeBB[piece.Bishop.Index()]).Or(p.typeBB[piece.ProBishop.Index()]))
	for _, s := range sliders.Squares() {
		pc, _ := p.PieceAt(s)
		rookLike := pc.Type == piece.Rook || pc.Type == piece.ProRook
		onFileOrRank := s.File() == king.File() || s.Rank() == king.Rank()
		if rookLike != onFileOrRank {
			// A rook does not slide along a diagonal, nor a bishop along a
			// file or rank.
			continue
		}
		between := attacks.Between(king, s)
		blockers := between.And(p.occupied)
		if blockers.Count() != 1 {
			continue
		}
		if blockers.And(p.colorBB[c.Index()]).IsAny() {
			pinned = pinned.Or(blockers)
		}
	}

	isEnemyBlack := enemy == piece.Black
	lances := p.colorBB[enemy.Index()].And(p.typeBB[piece.Lance.Index()])
	for _, s := range lances.Squares() {
		if s.File() != king.File() {
			continue
		}
		if !(king.RelativeRank(isEnemyBlack) < s.RelativeRank(isEnemyBlack)) {
			continue
		}
		between := attacks.Between(king, s)
		blockers := between.And(p.occupied)
		if blockers.Count() != 1 {
			continue
		}
		if blockers.And(p.colorBB[c.Index()]).IsAny() {
			pinned = pinned.Or(blockers)
		}
	}
	return pinned
}

// canPromote reports whether a move of pc from/to the given squares is
// eligible to promote: pc is not already promoted or a king/gold, and
// either endpoint lies in pc's promotion zone.
func canPromote(pc piece.Piece, from, to square.Square) bool {
	if _, ok := pc.Type.Promote(); !ok {
		return false
	}
	isBlack := pc.Color == piece.Black
	return from.InPromotionZone(isBlack) || to.InPromotionZone(isBlack)
}

// mustPromote reports whether pc would have no legal move left standing
// on to unpromoted, forcing promotion.
func mustPromote(pc piece.Piece, to square.Square) bool {
	isBlack := pc.Color == piece.Black
	return !pc.IsPlaceableAt(to.RelativeRank(isBlack))
}

// GenerateLegalMoves returns every legal move available to the side to
// move, including drops.
func (p *Position) GenerateLegalMoves() []moves.Move {
	var out []moves.Move
	c := p.sideToMove
	own := p.colorBB[c.Index()]

	for _, sq := range own.Squares() {
		pc, _ := p.PieceAt(sq)
		targets := p.MoveCandidates(sq)
		for _, to := range targets.Squares() {
			if canPromote(pc, sq, to) {
				if p.isLegalAfter(moves.NewNormal(sq, to, true)) {
					out = append(out, moves.NewNormal(sq, to, true))
				}
				if mustPromote(pc, to) {
					continue
				}
			}
			m := moves.NewNormal(sq, to, false)
			if p.isLegalAfter(m) {
				out = append(out, m)
			}
		}
	}

	empty := p.occupied.Not()
	for _, pt := range hand.DroppableTypes() {
		if p.hands[c.Index()].Get(piece.Piece{Type: pt, Color: c}) == 0 {
			continue
		}
		for _, to := range empty.Squares() {
			isBlack := c == piece.Black
			if !(piece.Piece{Type: pt}).IsPlaceableAt(to.RelativeRank(isBlack)) {
				continue
			}
			if pt == piece.Pawn && p.hasUnpromotedPawnOnFile(c, to.File()) {
				continue
			}
			m := moves.NewDrop(to, pt)
			if pt == piece.Pawn && p.isDropMate(m, c) {
				continue
			}
			if p.isLegalAfter(m) {
				out = append(out, m)
			}
		}
	}
	return out
}

// hasUnpromotedPawnOnFile reports whether color already has an unpromoted
// pawn standing on file (nifu).
func (p *Position) hasUnpromotedPawnOnFile(c piece.Color, file int) bool {
	pawns := p.colorBB[c.Index()].And(p.typeBB[piece.Pawn.Index()])
	for _, s := range pawns.Squares() {
		if s.File() == file {
			return true
		}
	}
	return false
}

// isDropMate reports whether dropping a pawn per m would checkmate the
// opponent (uchifuzume), by applying the drop, testing for checkmate, and
// reverting.
func (p *Position) isDropMate(m moves.Move, c piece.Color) bool {
	rec, err := p.applyRaw(m)
	if err != nil {
		return false
	}
	defer p.undoRaw(rec)

	enemy := c.Flip()
	if !p.InCheck(enemy) {
		return false
	}
	saved := p.sideToMove
	p.sideToMove = enemy
	hasEscape := len(p.GenerateLegalMoves()) > 0
	p.sideToMove = saved
	return !hasEscape
}

// isLegalAfter reports whether applying m leaves the mover's own king
// safe, by applying it, testing, and reverting — the make-then-revert
// self-check test.
func (p *Position) isLegalAfter(m moves.Move) bool {
	c := p.sideToMove
	rec, err := p.applyRaw(m)
	if err != nil {
		return false
	}
	safe := !p.InCheck(c)
	p.undoRaw(rec)
	return safe
}
