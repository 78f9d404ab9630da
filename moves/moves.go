// Package moves defines the Move and MoveRecord types and their SFEN
// textual forms.
package moves

import (
	"strings"

	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

// Kind distinguishes a board-to-board move from a hand-to-board drop.
type Kind uint8

const (
	Normal Kind = iota
	Drop
)

// Move is either a Normal move (From, To, Promote) or a Drop (To,
// PieceType). Go has no tagged-union type, so every field is present and
// Kind says which are meaningful, mirroring the two-variant enum this
// engine's rules are defined over.
type Move struct {
	Kind      Kind
	From      square.Square // Normal only
	To        square.Square
	Promote   bool             // Normal only
	PieceType piece.PieceType // Drop only
}

// NewNormal builds a board-to-board move.
func NewNormal(from, to square.Square, promote bool) Move {
	return Move{Kind: Normal, From: from, To: to, Promote: promote}
}

// NewDrop builds a hand-to-board drop.
func NewDrop(to square.Square, pt piece.PieceType) Move {
	return Move{Kind: Drop, To: to, PieceType: pt}
}

// ParseSFEN reads a move-SFEN token: "<from><to>[+]" for a normal move, or
// "<PIECE-UPPER>*<to>" for a drop.
func ParseSFEN(s string) (Move, bool) {
	if len(s) == 0 {
		return Move{}, false
	}
	if s[0] >= '1' && s[0] <= '9' {
		if len(s) != 4 && !(len(s) == 5 && s[4] == '+') {
			return Move{}, false
		}
		from, ok := square.Parse(s[0:2])
		if !ok {
			return Move{}, false
		}
		to, ok := square.Parse(s[2:4])
		if !ok {
			return Move{}, false
		}
		return NewNormal(from, to, len(s) == 5), true
	}

	if len(s) == 4 && s[1] == '*' {
		pt, ok := piece.ParsePieceType(s[0])
		if !ok || s[0] < 'A' || s[0] > 'Z' {
			return Move{}, false
		}
		to, ok := square.Parse(s[2:4])
		if !ok {
			return Move{}, false
		}
		return NewDrop(to, pt), true
	}

	return Move{}, false
}

// String renders m in move-SFEN notation.
func (m Move) String() string {
	if m.Kind == Drop {
		return strings.ToUpper(m.PieceType.String()) + "*" + m.To.String()
	}
	s := m.From.String() + m.To.String()
	if m.Promote {
		s += "+"
	}
	return s
}

// Equal reports whether m describes the same move as a record built from
// it: same From/To/Promote for a Normal move, or same To/PieceType for a
// Drop.
func (m Move) Equal(o Move) bool {
	if m.Kind != o.Kind {
		return false
	}
	if m.Kind == Drop {
		return m.To == o.To && m.PieceType == o.PieceType
	}
	return m.From == o.From && m.To == o.To && m.Promote == o.Promote
}

// Record is the information needed to undo an applied move, pushed onto a
// Position's move history at application time.
type Record struct {
	Kind         Kind
	From         square.Square // Normal
	To           square.Square
	Placed       piece.Piece // Normal: the piece standing on To after the move
	Captured     piece.Piece // Normal: the pre-move occupant of To
	HasCaptured  bool
	Promoted     bool
	DroppedPiece piece.Piece // Drop: type and color of the dropped piece
}

// ToSFEN renders the record in move-SFEN notation.
func (r Record) ToSFEN() string {
	if r.Kind == Drop {
		return strings.ToUpper(r.DroppedPiece.Type.String()) + "*" + r.To.String()
	}
	s := r.From.String() + r.To.String()
	if r.Promoted {
		s += "+"
	}
	return s
}
