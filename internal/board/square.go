// Package board implements a mover-relative bitboard chess
// representation: move generation, FEN parsing, and perft.
package board

import "fmt"

// Square is a board square numbered 0-63 under the little-endian
// rank-file mapping used throughout this package: a1=0, h1=7, a8=56,
// h8=63. File occupies the low 3 bits, rank the next 3.
type Square uint8

// Named squares, one constant per board square plus the NoSquare
// sentinel for "off the board" (an empty en passant target, a captured
// piece's last square, and so on).
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare builds a Square from a zero-indexed file (0=a..7=h) and
// rank (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File reports sq's file, 0 (a) through 7 (h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank reports sq's rank, 0 (rank 1) through 7 (rank 8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Mirror reflects sq across the board's horizontal midline, rank r
// swapping with rank 7-r and the file left unchanged. This is the
// per-square counterpart to Board.flip's byte-reversal: it converts a
// single square between absolute and mover-relative orientation, which
// is how ParseMove/Move.String and ParseFEN/ToFEN translate squares
// when Black is to move.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// String renders sq in algebraic notation ("e4"), or "-" for
// NoSquare/out-of-range values, matching the FEN convention for an
// absent en passant target.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare reads algebraic notation ("e4") and returns the
// corresponding Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %s", ErrInvalidSquare, s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %s", ErrInvalidSquare, s)
	}

	return NewSquare(file, rank), nil
}
