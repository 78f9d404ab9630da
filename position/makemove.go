package position

import (
	"github.com/treepeck/shogi/moves"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/sfen"
	"github.com/treepeck/shogi/square"
)

// applyRaw applies m to the board, hands and side to move, with no
// legality checking beyond the structural requirement that a Normal
// move's origin holds a piece and a Drop's piece is available in hand. It
// returns the record undoRaw needs to reverse it.
func (p *Position) applyRaw(m moves.Move) (moves.Record, error) {
	c := p.sideToMove
	var rec moves.Record

	if m.Kind == moves.Drop {
		pc := piece.Piece{Type: m.PieceType, Color: c}
		if p.hands[c.Index()].Get(pc) == 0 {
			return rec, ErrNonMovablePiece
		}
		if p.board[m.To] != nil {
			return rec, ErrNonMovablePiece
		}
		p.hands[c.Index()].Decrement(pc)
		p.place(m.To, pc)
		rec = moves.Record{Kind: moves.Drop, To: m.To, DroppedPiece: pc}
	} else {
		mover, ok := p.PieceAt(m.From)
		if !ok || mover.Color != c {
			return rec, ErrNonMovablePiece
		}
		captured, hadCaptured := p.PieceAt(m.To)
		if hadCaptured {
			p.remove(m.To, captured)
			held := captured.UnpromoteOrSelf()
			held.Color = c
			p.hands[c.Index()].Increment(held)
		}
		p.remove(m.From, mover)
		placed := mover
		if m.Promote {
			placed, _ = mover.Promote()
		}
		p.place(m.To, placed)
		rec = moves.Record{
			Kind: moves.Normal, From: m.From, To: m.To,
			Placed: placed, Captured: captured, HasCaptured: hadCaptured,
			Promoted: m.Promote,
		}
	}

	p.sideToMove = c.Flip()
	return rec, nil
}

// undoRaw reverses the effect of the applyRaw call that produced rec.
func (p *Position) undoRaw(rec moves.Record) {
	c := p.sideToMove.Flip()

	if rec.Kind == moves.Drop {
		p.remove(rec.To, rec.DroppedPiece)
		p.hands[c.Index()].Increment(rec.DroppedPiece)
	} else {
		p.remove(rec.To, rec.Placed)
		mover := rec.Placed
		if rec.Promoted {
			mover, _ = rec.Placed.Unpromote()
		}
		p.place(rec.From, mover)
		if rec.HasCaptured {
			held := rec.Captured.UnpromoteOrSelf()
			held.Color = c
			p.hands[c.Index()].Decrement(held)
			p.place(rec.To, rec.Captured)
		}
	}

	p.sideToMove = c
}

// MakeMove validates and applies m, which must belong to the side to
// move. On success it returns nil, unless applying m makes the resulting
// position occur a fourth time: ErrRepetition (plain fourfold draw),
// ErrPerpetualCheckLose (the mover has checked the opponent on every one
// of its moves across the whole repeated cycle, and so loses), or
// ErrPerpetualCheckWin (the opponent was the continuous checker, and so
// the mover wins). In all three cases the move is still applied; it is
// the caller's responsibility to end the game when told to.
func (p *Position) MakeMove(m moves.Move) error {
	c := p.sideToMove

	if m.Kind == moves.Drop {
		if err := p.validateDrop(m, c); err != nil {
			return err
		}
	} else {
		mover, ok := p.PieceAt(m.From)
		if !ok {
			return ErrNonMovablePiece
		}
		if mover.Color != c {
			return ErrEnemysTurn
		}
		if !p.MoveCandidates(m.From).Has(m.To) {
			return ErrNonMovablePiece
		}
		if m.Promote && !canPromote(mover, m.From, m.To) {
			return ErrNonMovablePiece
		}
		if !m.Promote && mustPromote(mover, m.To) {
			return ErrNonMovablePiece
		}
	}

	rec, err := p.applyRaw(m)
	if err != nil {
		return err
	}

	if p.InCheck(c) {
		p.undoRaw(rec)
		return ErrInCheck
	}

	if p.InCheck(c.Flip()) {
		p.checkStreak[c.Index()]++
	} else {
		p.checkStreak[c.Index()] = 0
	}

	p.history = append(p.history, rec)
	p.ply++
	fingerprint := p.fingerprint()
	p.posHistory = append(p.posHistory, positionRecord{fingerprint: fingerprint, checkStreak: p.checkStreak})

	return p.classifyRepetition(fingerprint, c)
}

// UnmakeMove reverses the most recent call to MakeMove. It panics if no
// move has been made, the same contract the teacher's make/unmake pairing
// relies on to keep the history stack balanced.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	if n == 0 {
		panic("position: UnmakeMove called with empty history")
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]
	p.posHistory = p.posHistory[:len(p.posHistory)-1]
	p.ply--
	p.undoRaw(rec)

	if m := len(p.posHistory); m > 0 {
		p.checkStreak = p.posHistory[m-1].checkStreak
	} else {
		p.checkStreak = [2]int{}
	}
}

// validateDrop checks nifu, placeability and uchifuzume for a pending pawn
// drop, and piece availability for every drop.
func (p *Position) validateDrop(m moves.Move, c piece.Color) error {
	pc := piece.Piece{Type: m.PieceType, Color: c}
	if p.hands[c.Index()].Get(pc) == 0 {
		return ErrNonMovablePiece
	}
	if p.board[m.To] != nil {
		return ErrNonMovablePiece
	}
	isBlack := c == piece.Black
	if !pc.IsPlaceableAt(m.To.RelativeRank(isBlack)) {
		return ErrNonMovablePiece
	}
	if m.PieceType == piece.Pawn {
		if p.hasUnpromotedPawnOnFile(c, m.To.File()) {
			return ErrNifu
		}
		if p.isDropMate(m, c) {
			return ErrUchifuzume
		}
	}
	return nil
}

// fingerprint is the SFEN-without-move-count string used to recognize a
// repeated position.
func (p *Position) fingerprint() string {
	var board sfen.Board
	for s := 0; s < square.NumSquares; s++ {
		board[s] = p.board[s]
	}
	decoded := sfen.Position{
		Board:      board,
		SideToMove: p.sideToMove,
		Hand:       mergeHands(p.handOf(piece.Black), p.handOf(piece.White)),
	}
	return sfen.FormatBoard(decoded.Board) + " " + sfen.FormatSide(decoded.SideToMove) +
		" " + sfen.FormatHand(decoded.Hand)
}

// classifyRepetition reports whether the position just reached, identified
// by fingerprint, has now occurred a fourth time, and if so whether one
// side delivered check on every one of its own moves across the repeated
// cycle (perpetual check), in which case that side loses regardless of
// which side is mover.
func (p *Position) classifyRepetition(fingerprint string, mover piece.Color) error {
	count := 0
	firstIdx := -1
	for i, rec := range p.posHistory {
		if rec.fingerprint == fingerprint {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	if count < 4 {
		return nil
	}

	cycle := len(p.posHistory) - 1 - firstIdx
	if cycle <= 0 {
		return ErrRepetition
	}
	// Each side moves roughly every other ply within the cycle; requiring
	// a streak of at least half the cycle's length is the threshold for
	// "checked on every move this side made during it."
	ownMoves := (cycle + 1) / 2
	if p.checkStreak[mover.Index()] >= ownMoves {
		return ErrPerpetualCheckLose
	}
	if p.checkStreak[mover.Flip().Index()] >= ownMoves {
		return ErrPerpetualCheckWin
	}
	return ErrRepetition
}
