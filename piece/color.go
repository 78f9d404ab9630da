// Package piece defines the Color, PieceType and Piece domain values.
package piece

// Color is one of the two sides playing.
type Color int8

const (
	Black Color = iota // moves first
	White
)

// Index returns the color's position in a two-element array.
func (c Color) Index() int { return int(c) }

// Flip returns the other color.
func (c Color) Flip() Color {
	if c == Black {
		return White
	}
	return Black
}

// IsBlack reports whether c is Black, the convention square.Square's
// relative-rank helpers key off of.
func (c Color) IsBlack() bool { return c == Black }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Colors lists both colors, Black first.
var Colors = [2]Color{Black, White}
