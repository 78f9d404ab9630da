package piece

// PieceType is one of the fourteen kinds of Shogi piece.
type PieceType int8

const (
	King PieceType = iota
	Rook
	Bishop
	Gold
	Silver
	Knight
	Lance
	Pawn
	ProRook
	ProBishop
	ProSilver
	ProKnight
	ProLance
	ProPawn

	NumPieceTypes = int(ProPawn) + 1
)

// AllPieceTypes lists every variant in King→...→Pawn→ProRook→...→ProPawn
// order, the PieceType iteration order.
var AllPieceTypes = [NumPieceTypes]PieceType{
	King, Rook, Bishop, Gold, Silver, Knight, Lance, Pawn,
	ProRook, ProBishop, ProSilver, ProKnight, ProLance, ProPawn,
}

// Index returns the type's position for array indexing.
func (pt PieceType) Index() int { return int(pt) }

// Promote returns the promoted form of pt, if any. King, Gold and the
// already-promoted types have none.
func (pt PieceType) Promote() (PieceType, bool) {
	switch pt {
	case Pawn:
		return ProPawn, true
	case Lance:
		return ProLance, true
	case Knight:
		return ProKnight, true
	case Silver:
		return ProSilver, true
	case Rook:
		return ProRook, true
	case Bishop:
		return ProBishop, true
	default:
		return pt, false
	}
}

// Unpromote returns the base form of pt, if pt is a promoted type.
func (pt PieceType) Unpromote() (PieceType, bool) {
	switch pt {
	case ProPawn:
		return Pawn, true
	case ProLance:
		return Lance, true
	case ProKnight:
		return Knight, true
	case ProSilver:
		return Silver, true
	case ProRook:
		return Rook, true
	case ProBishop:
		return Bishop, true
	default:
		return pt, false
	}
}

// UnpromoteOrSelf returns pt's base form, or pt itself if it is not a
// promoted type. Used when a captured piece reverts on entering hand.
func (pt PieceType) UnpromoteOrSelf() PieceType {
	if base, ok := pt.Unpromote(); ok {
		return base
	}
	return pt
}

// IsHandPiece reports whether pt can be held in a player's hand: the
// seven droppable types. King and all promoted types are never held.
func (pt PieceType) IsHandPiece() bool {
	switch pt {
	case Rook, Bishop, Gold, Silver, Knight, Lance, Pawn:
		return true
	default:
		return false
	}
}

// ParsePieceType reads a single case-insensitive SFEN piece-type letter
// (k, r, b, g, s, n, l, p — never the promotion '+' prefix, which callers
// strip first).
func ParsePieceType(c byte) (PieceType, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	// Manual switch construction, matching the codec style used throughout
	// this package's siblings, rather than a map lookup.
	switch c {
	case 'k':
		return King, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'g':
		return Gold, true
	case 's':
		return Silver, true
	case 'n':
		return Knight, true
	case 'l':
		return Lance, true
	case 'p':
		return Pawn, true
	default:
		return King, false
	}
}

// String renders pt as its lowercase SFEN letter, with a '+' prefix for
// promoted types.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "k"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Gold:
		return "g"
	case Silver:
		return "s"
	case Knight:
		return "n"
	case Lance:
		return "l"
	case Pawn:
		return "p"
	case ProRook:
		return "+r"
	case ProBishop:
		return "+b"
	case ProSilver:
		return "+s"
	case ProKnight:
		return "+n"
	case ProLance:
		return "+l"
	case ProPawn:
		return "+p"
	default:
		return "?"
	}
}
