// Package sfen encodes and decodes Shogi Forsyth-Edwards Notation: the
// board placement, hand contents, side to move and move count that
// together describe a position.
package sfen

import (
	"errors"
	"strconv"
	"strings"

	"github.com/treepeck/shogi/hand"
	"github.com/treepeck/shogi/piece"
	"github.com/treepeck/shogi/square"
)

// Sentinel errors returned by Parse and its helpers. Callers compare with
// errors.Is; a malformed SFEN string never panics.
var (
	ErrMissingDataFields = errors.New("sfen: missing data fields")
	ErrIllegalBoardState = errors.New("sfen: malformed board placement")
	ErrIllegalSideToMove = errors.New("sfen: malformed side to move")
	ErrIllegalPieceType  = errors.New("sfen: unrecognized piece letter")
	ErrIllegalMoveCount  = errors.New("sfen: malformed move number")

	// ErrIllegalMove is reserved for the extended "position sfen ...
	// moves ..." form usi parses; sfen.Parse itself never returns it.
	ErrIllegalMove = errors.New("sfen: malformed move token")
)

// Board holds one piece per square, nil meaning empty. It has no notion
// of bitboards or indices beyond square.Square; Position builds its own
// representation from it.
type Board [square.NumSquares]*piece.Piece

// ParseBoard decodes the piece-placement field of an SFEN string: nine
// '/'-separated ranks from rank 0 (the top, White's back rank) to rank 8,
// each listing files from file 8 down to file 0, a run of digits meaning
// that many empty squares, '+' promoting the piece letter that follows.
func ParseBoard(s string) (Board, error) {
	var b Board
	ranks := strings.Split(s, "/")
	if len(ranks) != 9 {
		return b, ErrIllegalBoardState
	}
	for r, row := range ranks {
		file := 8
		promote := false
		for i := 0; i < len(row); i++ {
			c := row[i]
			switch {
			case c == '+':
				promote = true
			case c >= '1' && c <= '9':
				if promote {
					return b, ErrIllegalBoardState
				}
				file -= int(c - '0')
			default:
				if file < 0 {
					return b, ErrIllegalBoardState
				}
				p, ok := piece.Parse(c, promote)
				if !ok {
					return b, ErrIllegalBoardState
				}
				sq, ok := square.New(file, r)
				if !ok {
					return b, ErrIllegalBoardState
				}
				b[sq] = &p
				file--
				promote = false
			}
		}
		if file != -1 || promote {
			return b, ErrIllegalBoardState
		}
	}
	return b, nil
}

// FormatBoard renders b as the piece-placement field of an SFEN string.
func FormatBoard(b Board) string {
	var out strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 {
			out.WriteByte('/')
		}
		empty := 0
		for file := 8; file >= 0; file-- {
			sq, _ := square.New(file, r)
			p := b[sq]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			out.WriteString(p.String())
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
	}
	return out.String()
}

// ParseSide decodes the side-to-move field: "b" for Black, "w" for White.
func ParseSide(s string) (piece.Color, error) {
	switch s {
	case "b":
		return piece.Black, nil
	case "w":
		return piece.White, nil
	default:
		return piece.Black, ErrIllegalSideToMove
	}
}

// FormatSide renders c as the side-to-move field.
func FormatSide(c piece.Color) string {
	if c == piece.Black {
		return "b"
	}
	return "w"
}

// ParseHand decodes the hand field: a run of "<count><PIECE>" groups in
// any order, count omitted when it is 1, or "-" for two empty hands.
func ParseHand(s string) (hand.Hand, error) {
	var h hand.Hand
	if s == "-" {
		return h, nil
	}
	n := 0
	haveDigits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '1' && c <= '9' || (haveDigits && c == '0') {
			n = n*10 + int(c-'0')
			haveDigits = true
			continue
		}
		count := 1
		if haveDigits {
			count = n
		}
		promoted := false
		p, ok := piece.Parse(c, promoted)
		if !ok {
			return h, ErrIllegalPieceType
		}
		h.Set(p, h.Get(p)+uint8(count))
		n = 0
		haveDigits = false
	}
	if haveDigits {
		return h, ErrIllegalPieceType
	}
	return h, nil
}

// FormatHand renders h as the hand field, Black's pieces first (RBGSNLP
// order), then White's, each group omitting the count when it is 1, "-"
// when both hands are empty.
func FormatHand(h hand.Hand) string {
	var out strings.Builder
	for _, c := range piece.Colors {
		for _, pt := range hand.DroppableTypes() {
			p := piece.Piece{Type: pt, Color: c}
			n := h.Get(p)
			if n == 0 {
				continue
			}
			if n > 1 {
				out.WriteString(strconv.Itoa(int(n)))
			}
			out.WriteString(p.String())
		}
	}
	if out.Len() == 0 {
		return "-"
	}
	return out.String()
}

// Position is the fully decoded content of an SFEN string.
type Position struct {
	Board      Board
	SideToMove piece.Color
	Hand       hand.Hand
	MoveNum    int
}

// Parse decodes a complete SFEN string: "<board> <side> <hand> <move
// number>", space-separated.
func Parse(s string) (Position, error) {
	var pos Position
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return pos, ErrMissingDataFields
	}

	b, err := ParseBoard(fields[0])
	if err != nil {
		return pos, err
	}
	side, err := ParseSide(fields[1])
	if err != nil {
		return pos, err
	}
	h, err := ParseHand(fields[2])
	if err != nil {
		return pos, err
	}
	n, err := strconv.Atoi(fields[3])
	if err != nil {
		return pos, ErrIllegalMoveCount
	}

	pos.Board = b
	pos.SideToMove = side
	pos.Hand = h
	pos.MoveNum = n
	return pos, nil
}

// Format renders pos as a complete SFEN string.
func Format(pos Position) string {
	var out strings.Builder
	out.WriteString(FormatBoard(pos.Board))
	out.WriteByte(' ')
	out.WriteString(FormatSide(pos.SideToMove))
	out.WriteByte(' ')
	out.WriteString(FormatHand(pos.Hand))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(pos.MoveNum))
	return out.String()
}
