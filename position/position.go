// Package position assembles square, piece, bitboard, attacks and hand
// into a full Shogi position: board state, move application, legality
// checking and the draw rules that terminate a game.
package position

import (
	"errors"

	"github.com/treepeck/shogi/attacks"
	"github.com/treepeck/shogi/bitboard"
	"github.com/treepeck/shogi/hand"
	"github.com/treepeck/shogi/moves"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/sfen"
	"github.com/treepeck/shogi/square"
)

// Sentinel errors making up the MoveError taxonomy returned by MakeMove.
// Callers compare with errors.Is.
var (
	ErrEnemysTurn         = errors.New("position: piece does not belong to the side to move")
	ErrNonMovablePiece    = errors.New("position: no legal destination for that piece")
	ErrInCheck            = errors.New("position: move leaves the mover's king in check")
	ErrNifu               = errors.New("position: two unpromoted pawns would stand on the same file")
	ErrUchifuzume         = errors.New("position: a pawn drop may not deliver checkmate")
	ErrRepetition         = errors.New("position: move would repeat a position a fourth time")
	ErrPerpetualCheckWin  = errors.New("position: the repetition is won by perpetual check")
	ErrPerpetualCheckLose = errors.New("position: the repetition is lost by perpetual check")

	// ErrInconsistent is the sentinel errors.Is target for any
	// InconsistentError, regardless of its Reason.
	ErrInconsistent = errors.New("position: inconsistent")
)

// InconsistentError reports a structurally invalid position discovered
// while decoding SFEN input, e.g. a missing king.
type InconsistentError struct{ Reason string }

func (e InconsistentError) Error() string { return "position: inconsistent: " + e.Reason }

// Is lets errors.Is(err, position.ErrInconsistent) match any
// InconsistentError regardless of its Reason.
func (e InconsistentError) Is(target error) bool { return target == ErrInconsistent }

// inconsistent builds an InconsistentError with the given reason.
func inconsistent(reason string) error { return InconsistentError{Reason: reason} }

// StartSFEN is the standard Shogi starting position.
const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// Position is a mutable Shogi board together with everything needed to
// generate legal moves, detect check, and apply or undo a move.
type Position struct {
	board      [square.NumSquares]*piece.Piece
	occupied   bitboard.Bitboard
	colorBB    [2]bitboard.Bitboard
	typeBB     [piece.NumPieceTypes]bitboard.Bitboard
	kingSquare [2]square.Square
	hands      [2]hand.Hand
	sideToMove piece.Color
	ply        int

	history     []moves.Record
	posHistory  []positionRecord
	checkStreak [2]int
}

// positionRecord couples a position's repetition fingerprint with the
// continuous-check streak it left behind, so that popping a ply off
// history also reverts the streak to what it was before that ply.
type positionRecord struct {
	fingerprint string
	checkStreak [2]int
}

// New returns the standard Shogi starting position.
func New() *Position {
	p, err := ParseSFEN(StartSFEN)
	if err != nil {
		panic("position: malformed built-in starting SFEN: " + err.Error())
	}
	return p
}

// ParseSFEN builds a fresh Position from a complete SFEN string.
func ParseSFEN(s string) (*Position, error) {
	p := &Position{}
	if err := p.SetSFEN(s); err != nil {
		return nil, err
	}
	return p, nil
}

// SetSFEN replaces p's entire state by decoding a complete SFEN string,
// discarding any move history. attacks.Init() is called defensively so
// callers never need a separate bootstrap step.
func (p *Position) SetSFEN(s string) error {
	attacks.Init()
	decoded, err := sfen.Parse(s)
	if err != nil {
		return err
	}

	*p = Position{
		sideToMove: decoded.SideToMove,
		ply:        decoded.MoveNum,
	}
	p.kingSquare[piece.Black.Index()] = square.None
	p.kingSquare[piece.White.Index()] = square.None

	for _, c := range piece.Colors {
		for _, pt := range hand.DroppableTypes() {
			pc := piece.Piece{Type: pt, Color: c}
			p.hands[c.Index()].Set(pc, decoded.Hand.Get(pc))
		}
	}

	for s := 0; s < square.NumSquares; s++ {
		sq := square.Square(s)
		pc := decoded.Board[sq]
		if pc == nil {
			continue
		}
		p.place(sq, *pc)
	}

	for _, c := range piece.Colors {
		if p.kingSquare[c.Index()] == square.None {
			return inconsistent("missing king for " + c.String())
		}
	}
	p.posHistory = append(p.posHistory, positionRecord{fingerprint: p.fingerprint(), checkStreak: p.checkStreak})
	return nil
}

// ToSFEN renders the current position as a complete SFEN string.
func (p *Position) ToSFEN() string {
	var board sfen.Board
	for s := 0; s < square.NumSquares; s++ {
		board[s] = p.board[s]
	}
	decoded := sfen.Position{
		Board:      board,
		SideToMove: p.sideToMove,
		Hand:       mergeHands(p.handOf(piece.Black), p.handOf(piece.White)),
		MoveNum:    p.ply,
	}
	return sfen.Format(decoded)
}

// mergeHands combines the two per-color hands into the single Hand value
// sfen.FormatHand expects; each droppable slot belongs to exactly one
// color, so picking whichever of h/o is nonzero per slot is exact.
func mergeHands(h, o hand.Hand) hand.Hand {
	var out hand.Hand
	for _, c := range piece.Colors {
		for _, pt := range hand.DroppableTypes() {
			pc := piece.Piece{Type: pt, Color: c}
			n := h.Get(pc)
			if n == 0 {
				n = o.Get(pc)
			}
			out.Set(pc, n)
		}
	}
	return out
}

// PieceAt returns the piece standing on sq, or ok=false if it is empty.
func (p *Position) PieceAt(sq square.Square) (piece.Piece, bool) {
	pc := p.board[sq]
	if pc == nil {
		return piece.Piece{}, false
	}
	return *pc, true
}

// HandOf returns a copy of color's hand.
func (p *Position) HandOf(c piece.Color) hand.Hand { return p.hands[c.Index()] }

func (p *Position) handOf(c piece.Color) hand.Hand { return p.hands[c.Index()] }

// SideToMove returns the color to move next.
func (p *Position) SideToMove() piece.Color { return p.sideToMove }

// Ply returns the current move number, as carried by SFEN's move-count
// field.
func (p *Position) Ply() int { return p.ply }

// MoveHistory returns every move applied so far, oldest first. The slice
// is owned by Position; callers must not mutate it.
func (p *Position) MoveHistory() []moves.Record { return p.history }

// KingSquare returns where color's king stands, or square.None if somehow
// absent (never true for a Position built through ParseSFEN or New).
func (p *Position) KingSquare(c piece.Color) square.Square { return p.kingSquare[c.Index()] }

// Occupied returns the set of every occupied square.
func (p *Position) Occupied() bitboard.Bitboard { return p.occupied }

// ColorBB returns the set of squares occupied by color's pieces.
func (p *Position) ColorBB(c piece.Color) bitboard.Bitboard { return p.colorBB[c.Index()] }

// TypeBB returns the set of squares occupied by pieces of type pt,
// regardless of color.
func (p *Position) TypeBB(pt piece.PieceType) bitboard.Bitboard { return p.typeBB[pt.Index()] }

// place puts pc on sq, updating every derived bitboard. sq must be empty.
func (p *Position) place(sq square.Square, pc piece.Piece) {
	p.board[sq] = &pc
	bb := bitboard.Of(sq)
	p.occupied = p.occupied.Or(bb)
	p.colorBB[pc.Color.Index()] = p.colorBB[pc.Color.Index()].Or(bb)
	p.typeBB[pc.Type.Index()] = p.typeBB[pc.Type.Index()].Or(bb)
	if pc.Type == piece.King {
		p.kingSquare[pc.Color.Index()] = sq
	}
}

// remove clears sq, which must hold pc, updating every derived bitboard.
func (p *Position) remove(sq square.Square, pc piece.Piece) {
	p.board[sq] = nil
	bb := bitboard.Of(sq)
	p.occupied = p.occupied.ClearAt(sq)
	p.colorBB[pc.Color.Index()] = p.colorBB[pc.Color.Index()].And(bb.Not())
	p.typeBB[pc.Type.Index()] = p.typeBB[pc.Type.Index()].And(bb.Not())
	if pc.Type == piece.King {
		p.kingSquare[pc.Color.Index()] = square.None
	}
}
