// Package timecontrol implements the two shogi clock disciplines, byo-yomi
// and Fischer increment. Neither type inspects a Position; they only ever
// account for elapsed time against a player's clock.
package timecontrol

import (
	"time"

	"github.com/treepeck/shogi/piece"
)

// Byoyomi is a main-time-plus-banked-seconds clock: once a player's main
// time is exhausted, each move draws from a single shared bank instead of
// a per-move allowance.
type Byoyomi struct {
	Black, White time.Duration
	Bank         time.Duration
}

// main returns a pointer to c's main-time field, so Consume can update it
// in place regardless of color.
func (b *Byoyomi) main(c piece.Color) *time.Duration {
	if c == piece.Black {
		return &b.Black
	}
	return &b.White
}

// Consume charges d against c's clock: first against main time, then
// against the shared bank. It returns false (flag fall) if d exceeds
// main time plus the bank combined, leaving the clock at zero rather than
// going negative.
func (b *Byoyomi) Consume(c piece.Color, d time.Duration) bool {
	main := b.main(c)
	if d <= *main {
		*main -= d
		return true
	}
	remainder := d - *main
	if remainder > b.Bank {
		*main = 0
		b.Bank = 0
		return false
	}
	*main = 0
	b.Bank -= remainder
	return true
}

// Fischer is a main-time-plus-increment clock: every completed move
// credits the mover's own increment.
type Fischer struct {
	Black, White                     time.Duration
	IncrementBlack, IncrementWhite time.Duration
}

func (f *Fischer) main(c piece.Color) *time.Duration {
	if c == piece.Black {
		return &f.Black
	}
	return &f.White
}

func (f *Fischer) increment(c piece.Color) time.Duration {
	if c == piece.Black {
		return f.IncrementBlack
	}
	return f.IncrementWhite
}

// Consume charges d against c's clock. It returns false (flag fall,
// no subtraction) if d exceeds c's remaining time; otherwise it
// subtracts d and then credits c's increment, matching Fischer-clock
// semantics where the bonus is only added once the move completes.
func (f *Fischer) Consume(c piece.Color, d time.Duration) bool {
	main := f.main(c)
	if d > *main {
		return false
	}
	*main -= d
	*main += f.increment(c)
	return true
}
