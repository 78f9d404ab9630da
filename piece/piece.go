package piece

import "strings"

// Piece is a piece type paired with the color of the player who owns it.
type Piece struct {
	Type  PieceType
	Color Color
}

// Flip returns p with its color toggled, type unchanged.
func (p Piece) Flip() Piece {
	return Piece{Type: p.Type, Color: p.Color.Flip()}
}

// Promote returns p's promoted form, preserving color.
func (p Piece) Promote() (Piece, bool) {
	pt, ok := p.Type.Promote()
	if !ok {
		return p, false
	}
	return Piece{Type: pt, Color: p.Color}, true
}

// Unpromote returns p's unpromoted form, preserving color.
func (p Piece) Unpromote() (Piece, bool) {
	pt, ok := p.Type.Unpromote()
	if !ok {
		return p, false
	}
	return Piece{Type: pt, Color: p.Color}, true
}

// UnpromoteOrSelf returns p's unpromoted form, or p itself if it was not
// promoted.
func (p Piece) UnpromoteOrSelf() Piece {
	return Piece{Type: p.Type.UnpromoteOrSelf(), Color: p.Color}
}

// IsPlaceableAt reports whether it is legal for p to stand on a square with
// the given relative rank as seen by p's own color: pawns and lances need
// at least one rank of forward movement available, knights need two.
func (p Piece) IsPlaceableAt(relativeRank int) bool {
	switch p.Type {
	case Pawn, Lance:
		return relativeRank >= 1
	case Knight:
		return relativeRank >= 2
	default:
		return true
	}
}

// Parse reads a SFEN piece letter: uppercase is Black, lowercase is White.
// The caller has already stripped any '+' promotion prefix and must pass
// promoted separately.
func Parse(c byte, promoted bool) (Piece, bool) {
	color := White
	if c >= 'A' && c <= 'Z' {
		color = Black
	}
	pt, ok := ParsePieceType(c)
	if !ok {
		return Piece{}, false
	}
	if promoted {
		pt, ok = pt.Promote()
		if !ok {
			return Piece{}, false
		}
	}
	return Piece{Type: pt, Color: color}, true
}

// String renders p as its SFEN letter: uppercase for Black, lowercase for
// White, with a '+' prefix for promoted types.
func (p Piece) String() string {
	s := p.Type.String()
	if p.Color == White {
		return s
	}
	return strings.ToUpper(s)
}
