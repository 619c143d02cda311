package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece index (see promoPieces)
// bits 14-15: flags (0=normal, 1=promotion, 2=en passant, 3=castling)
type Move uint16

// Move flags
const (
	FlagNormal    uint16 = 0 << 14
	FlagPromotion uint16 = 1 << 14
	FlagEnPassant uint16 = 2 << 14
	FlagCastling  uint16 = 3 << 14
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// promoPieces is the fixed order promotion pieces are packed in, since
// PieceType values for Knight/Bishop/Rook/Queen are not contiguous.
var promoPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

func promoIndex(pt PieceType) Move {
	for i, p := range promoPieces {
		if p == pt {
			return Move(i)
		}
	}
	return 0
}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | promoIndex(promo)<<12 | Move(FlagPromotion)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagEnPassant)
}

// NewCastling creates a castling move (king's movement).
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the move flag.
func (m Move) Flag() uint16 {
	return uint16(m) & 0xC000
}

// Promotion returns the promotion piece kind (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return promoPieces[(m>>12)&3]
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flag() == FlagPromotion
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	return !pos.IsEmpty(m.To())
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet(pos *Position) bool {
	return !m.IsCapture(pos) && !m.IsPromotion()
}

// algebraicToIndex converts an algebraic square (e.g. "e4") into the
// mover-relative square index a Move is packed with: for White to move
// the relative board matches absolute orientation, so the square is
// used as parsed; for Black to move the board has already been
// flipped, so the square is mirrored to land in the same relative
// frame. Mirroring on the side to move, not on color, is load-bearing:
// it is what lets every move -- whoever's turn it is -- be generated
// and packed in the same "push north" orientation.
func algebraicToIndex(s string, us Color) (Square, error) {
	sq, err := ParseSquare(s)
	if err != nil {
		return NoSquare, err
	}
	if us == Black {
		sq = sq.Mirror()
	}
	return sq, nil
}

// indexToAlgebraic is the inverse of algebraicToIndex: it converts a
// mover-relative square index back to absolute algebraic notation for
// display, mirroring it back out of the relative frame when us is
// Black.
func indexToAlgebraic(sq Square, us Color) string {
	if us == Black {
		sq = sq.Mirror()
	}
	return sq.String()
}

// String returns the long algebraic notation of the move (e.g. "e2e4",
// "e7e8q") as played by the side to move us, converting the move's
// mover-relative squares back to absolute algebraic notation.
func (m Move) String(us Color) string {
	if m == NoMove {
		return "0000"
	}

	s := indexToAlgebraic(m.From(), us) + indexToAlgebraic(m.To(), us)

	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[(m>>12)&3])
	}

	return s
}

// ParseMove parses a long algebraic notation move string played by
// pos's side to move, converting its squares into the mover-relative
// frame pos and its moves are stored in.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("%w: %s", ErrBadLan, s)
	}

	from, err := algebraicToIndex(s[0:2], pos.SideToMove)
	if err != nil {
		return NoMove, fmt.Errorf("%w: %s", ErrBadLan, s)
	}

	to, err := algebraicToIndex(s[2:4], pos.SideToMove)
	if err != nil {
		return NoMove, fmt.Errorf("%w: %s", ErrBadLan, s)
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("%w: invalid promotion piece %c", ErrBadLan, s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("%w: no piece at %s", ErrBadLan, s[0:2])
	}

	pt := piece.Type()

	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewCastling(from, to), nil
	}

	if pt == Pawn && to == pos.EnPassant && pos.EnPassant != NoSquare {
		return NewEnPassant(from, to), nil
	}

	return NewMove(from, to), nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
