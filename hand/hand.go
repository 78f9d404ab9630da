// Package hand implements each player's captured-piece reservoir.
package hand

import "github.com/treepeck/shogi/piece"

// numDroppable is the count of piece types that can ever sit in a hand.
const numDroppable = 7

// Hand counts, per color, how many of each droppable piece type a player
// holds. The zero value is an empty hand.
type Hand struct {
	counts [2 * numDroppable]uint8
}

// handIndex maps a droppable piece type to its base slot; the caller adds
// a 7-wide color offset. Non-droppable types report ok=false.
func handIndex(pt piece.PieceType) (int, bool) {
	switch pt {
	case piece.Pawn:
		return 0, true
	case piece.Lance:
		return 1, true
	case piece.Knight:
		return 2, true
	case piece.Silver:
		return 3, true
	case piece.Gold:
		return 4, true
	case piece.Rook:
		return 5, true
	case piece.Bishop:
		return 6, true
	default:
		return 0, false
	}
}

func index(p piece.Piece) (int, bool) {
	base, ok := handIndex(p.Type)
	if !ok {
		return 0, false
	}
	if p.Color == piece.White {
		base += numDroppable
	}
	return base, true
}

// Get returns the number of p held. Non-droppable types always report 0.
func (h Hand) Get(p piece.Piece) uint8 {
	i, ok := index(p)
	if !ok {
		return 0
	}
	return h.counts[i]
}

// Set assigns the count of p held. A no-op for non-droppable types.
func (h *Hand) Set(p piece.Piece, n uint8) {
	if i, ok := index(p); ok {
		h.counts[i] = n
	}
}

// Increment adds one to p's count. A no-op for non-droppable types.
func (h *Hand) Increment(p piece.Piece) {
	if i, ok := index(p); ok {
		h.counts[i]++
	}
}

// Decrement removes one from p's count. A no-op for non-droppable types.
// Callers must ensure Get(p) > 0 first; decrementing past zero wraps
// around (undefined behavior at the design level, same as the source this
// was ported from).
func (h *Hand) Decrement(p piece.Piece) {
	if i, ok := index(p); ok {
		h.counts[i]--
	}
}

// Clear empties the hand.
func (h *Hand) Clear() {
	h.counts = [2 * numDroppable]uint8{}
}

// droppableOrder lists the seven droppable types in PieceType iteration
// order, used by the SFEN hand codec.
var droppableOrder = [numDroppable]piece.PieceType{
	piece.Rook, piece.Bishop, piece.Gold, piece.Silver,
	piece.Knight, piece.Lance, piece.Pawn,
}

// DroppableTypes returns the seven droppable piece types in PieceType
// iteration order.
func DroppableTypes() [numDroppable]piece.PieceType { return droppableOrder }
