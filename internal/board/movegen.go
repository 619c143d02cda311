package board

// Relative square constants for the side to move's own back rank,
// valid regardless of which actual color is moving: the board is kept
// mover-relative, so the mover's king and rooks always start the game
// on these squares in the current orientation.
const (
	relA1 Square = 0
	relE1 Square = 4
	relF1 Square = 5
	relG1 Square = 6
	relH1 Square = 7
	relB1 Square = 1
	relC1 Square = 2
	relD1 Square = 3
	relA8 Square = 56
	relH8 Square = 63
)

// castleRight returns the CastlingRights bit for color c's kingside or
// queenside castle.
func castleRight(c Color, kingSide bool) CastlingRights {
	if c == White {
		if kingSide {
			return WhiteKingSideCastle
		}
		return WhiteQueenSideCastle
	}
	if kingSide {
		return BlackKingSideCastle
	}
	return BlackQueenSideCastle
}

// GeneratePseudoLegal generates all pseudo-legal moves for the side to
// move. Moves are generated in a fixed order -- pawn, knight, rook,
// bishop, queen, king -- and are not ordered any further; the search
// package relies on this natural, unordered iteration.
func GeneratePseudoLegal(p *Position) *MoveList {
	ml := NewMoveList()
	generatePawnMoves(p, ml)
	generateKnightMoves(p, ml)
	generateRookMoves(p, ml)
	generateBishopMoves(p, ml)
	generateQueenMoves(p, ml)
	generateKingMoves(p, ml)
	generateCastlingMoves(p, ml)
	return ml
}

func generatePawnMoves(p *Position, ml *MoveList) {
	us, them := p.SideToMove, p.SideToMove.Other()
	ourPawns := p.Pieces[us][Pawn]
	empty := ^p.AllOccupied

	push1 := ourPawns.North() & empty
	push2 := (push1 & Rank3).North() & empty

	// Single pushes (non-promotion).
	for bb := push1 &^ Rank8; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 8)
		ml.Add(NewMove(from, to))
	}

	// Single pushes landing on the promotion rank.
	for bb := push1 & Rank8; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 8)
		addPromotions(ml, from, to)
	}

	// Double pushes (never land on the promotion rank).
	for bb := push2; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 16)
		ml.Add(NewMove(from, to))
	}

	// Captures.
	capLeft := ourPawns.NorthWest() & p.Occupied[them]
	capRight := ourPawns.NorthEast() & p.Occupied[them]

	for bb := capLeft &^ Rank8; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 7)
		ml.Add(NewMove(from, to))
	}
	for bb := capLeft & Rank8; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 7)
		addPromotions(ml, from, to)
	}
	for bb := capRight &^ Rank8; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 9)
		ml.Add(NewMove(from, to))
	}
	for bb := capRight & Rank8; bb != 0; {
		to := bb.PopLSB()
		from := Square(int(to) - 9)
		addPromotions(ml, from, to)
	}

	// En passant.
	if p.EnPassant != NoSquare {
		attackers := PawnAttacksSouth(SquareBB(p.EnPassant)) & ourPawns
		for attackers != 0 {
			from := attackers.PopLSB()
			ml.Add(NewEnPassant(from, p.EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

func generateKnightMoves(p *Position, ml *MoveList) {
	us := p.SideToMove
	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		targets := KnightAttacks(from) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func generateRookMoves(p *Position, ml *MoveList) {
	us := p.SideToMove
	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := RookAttacks(from, p.AllOccupied) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func generateBishopMoves(p *Position, ml *MoveList) {
	us := p.SideToMove
	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := BishopAttacks(from, p.AllOccupied) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func generateQueenMoves(p *Position, ml *MoveList) {
	us := p.SideToMove
	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		targets := QueenAttacks(from, p.AllOccupied) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func generateKingMoves(p *Position, ml *MoveList) {
	us := p.SideToMove
	kingBB := p.Pieces[us][King]
	if kingBB == 0 {
		return
	}
	from := kingBB.LSB()
	targets := KingAttacks(from) &^ p.Occupied[us]
	for targets != 0 {
		ml.Add(NewMove(from, targets.PopLSB()))
	}
}

func generateCastlingMoves(p *Position, ml *MoveList) {
	us, them := p.SideToMove, p.SideToMove.Other()
	if p.KingSquare[us] != relE1 {
		return
	}
	if p.Checkers != 0 {
		return
	}

	if p.CastlingRights.CanCastle(us, true) &&
		p.IsEmpty(relF1) && p.IsEmpty(relG1) &&
		!p.IsSquareAttacked(relE1, them) &&
		!p.IsSquareAttacked(relF1, them) &&
		!p.IsSquareAttacked(relG1, them) {
		ml.Add(NewCastling(relE1, relG1))
	}

	if p.CastlingRights.CanCastle(us, false) &&
		p.IsEmpty(relD1) && p.IsEmpty(relC1) && p.IsEmpty(relB1) &&
		!p.IsSquareAttacked(relE1, them) &&
		!p.IsSquareAttacked(relD1, them) &&
		!p.IsSquareAttacked(relC1, them) {
		ml.Add(NewCastling(relE1, relC1))
	}
}

// GenerateLegalMoves returns the subset of pseudo-legal moves that do
// not leave the mover's own king in check, found by making each move
// on a scratch copy and testing king safety.
func GenerateLegalMoves(p *Position) *MoveList {
	pseudo := GeneratePseudoLegal(p)
	legal := NewMoveList()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if p.MoveIsLegal(m) {
			legal.Add(m)
		}
	}
	return legal
}

// GeneratePseudoLegal is a convenience method equivalent to the
// package-level GeneratePseudoLegal function.
func (p *Position) GeneratePseudoLegal() *MoveList {
	return GeneratePseudoLegal(p)
}

// GenerateLegalMoves is a convenience method equivalent to the
// package-level GenerateLegalMoves function.
func (p *Position) GenerateLegalMoves() *MoveList {
	return GenerateLegalMoves(p)
}

// MoveIsLegal reports whether making m on a copy of p leaves the mover's
// king out of check. It does not verify that m is pseudo-legal in the first
// place -- callers are expected to only pass moves GeneratePseudoLegal
// produced.
func (p *Position) MoveIsLegal(m Move) bool {
	us := p.SideToMove
	cp := p.Copy()
	cp.Make(m)
	// cp.SideToMove is now the opponent (them); us's king must not be
	// attacked by the new side to move.
	return !cp.IsSquareAttacked(cp.KingSquare[us], cp.SideToMove)
}

// Make applies m to the position in place. It does not validate that m
// is legal or even pseudo-legal; the caller is responsible for that.
// Make mutates p directly and does not retain any information to undo
// the move -- callers that need undo must snapshot p.Copy() first.
func (p *Position) Make(m Move) {
	us, them := p.SideToMove, p.SideToMove.Other()
	from, to := m.From(), m.To()
	moving := p.PieceAt(from)
	pt := moving.Type()

	isPawnMove := pt == Pawn
	isCapture := false

	if m.IsEnPassant() {
		capturedSq := Square(int(to) - 8)
		p.removePiece(capturedSq)
		p.movePiece(from, to)
		isCapture = true
	} else if m.IsCastling() {
		p.movePiece(from, to)
		if to == relG1 {
			p.movePiece(relH1, relF1)
		} else {
			p.movePiece(relA1, relD1)
		}
	} else {
		if !p.IsEmpty(to) {
			isCapture = true
			p.removePiece(to)
		}
		p.movePiece(from, to)
		if m.IsPromotion() {
			p.removePiece(to)
			p.setPiece(NewPiece(m.Promotion(), us), to)
		}
	}

	p.updateCastlingRightsForMove(from, to, pt)

	if isPawnMove && int(to)-int(from) == 16 {
		p.EnPassant = Square(int(from) + 8)
	} else {
		p.EnPassant = NoSquare
	}

	if isPawnMove || isCapture {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.flip()
	p.UpdateCheckers()
}

// updateCastlingRightsForMove clears castling rights affected by a
// piece leaving or a piece being captured on one of the four home
// corners, plus both of the mover's rights if its king moved. Checking
// every move's from/to against the fixed corner squares (rather than
// tracking "has this rook moved" flags) is corner-independent and
// correct even when a rook is captured on its home square without
// ever having moved itself.
func (p *Position) updateCastlingRightsForMove(from, to Square, pt PieceType) {
	us, them := p.SideToMove, p.SideToMove.Other()

	if pt == King {
		p.CastlingRights &^= castleRight(us, true) | castleRight(us, false)
	}

	if from == relA1 || to == relA1 {
		p.CastlingRights &^= castleRight(us, false)
	}
	if from == relH1 || to == relH1 {
		p.CastlingRights &^= castleRight(us, true)
	}
	if from == relA8 || to == relA8 {
		p.CastlingRights &^= castleRight(them, false)
	}
	if from == relH8 || to == relH8 {
		p.CastlingRights &^= castleRight(them, true)
	}
}

// HasLegalMoves reports whether the side to move has at least one
// legal move, short-circuiting at the first one found rather than
// generating and filtering the full list.
func (p *Position) HasLegalMoves() bool {
	pseudo := GeneratePseudoLegal(p)
	for i := 0; i < pseudo.Len(); i++ {
		if p.MoveIsLegal(pseudo.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has no legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
