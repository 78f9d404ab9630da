package position

import (
	"github.com/treepeck/shogi/attacks"
	"github.com/treepeck/shogi/hand"
	"github.com/treepeck/shogi/piece"
)

// bigPiecePoints is the declaration-rule point value of a rook or bishop
// (promoted or not) standing in the entering-king zone; every other
// piece type is worth one point.
const bigPiecePoints = 5

// declareThreshold is the minimum point total a declaring side needs:
// Black (the first player) needs one more point than White.
func declareThreshold(c piece.Color) int {
	if c == piece.Black {
		return 28
	}
	return 27
}

// TryDeclareWinning reports whether color may win by entering-king
// declaration (nyugyoku): it must be color's turn to move, its king must
// stand in the opponent's camp and not be in check, at least ten of its
// other pieces must also stand in that camp, and the point total of
// those board pieces plus every piece held in hand (5 for a rook or
// bishop, 1 otherwise) must reach declareThreshold(color).
func (p *Position) TryDeclareWinning(c piece.Color) bool {
	if c != p.sideToMove {
		return false
	}

	king := p.kingSquare[c.Index()]
	if king < 0 {
		return false
	}
	isBlack := c == piece.Black
	if !king.InPromotionZone(isBlack) {
		return false
	}
	if p.InCheck(c) {
		return false
	}

	zone := attacks.PromoteZone(c)
	inZone := p.colorBB[c.Index()].And(zone)

	count, points := 0, 0
	for _, sq := range inZone.Squares() {
		pc, _ := p.PieceAt(sq)
		if pc.Type == piece.King {
			continue
		}
		count++
		switch pc.Type.UnpromoteOrSelf() {
		case piece.Rook, piece.Bishop:
			points += bigPiecePoints
		default:
			points++
		}
	}

	for _, pt := range hand.DroppableTypes() {
		if !pt.IsHandPiece() {
			continue
		}
		n := int(p.hands[c.Index()].Get(piece.Piece{Type: pt, Color: c}))
		if n == 0 {
			continue
		}
		switch pt {
		case piece.Rook, piece.Bishop:
			points += bigPiecePoints * n
		default:
			points += n
		}
	}

	return count >= 10 && points >= declareThreshold(c)
}
