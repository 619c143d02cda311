package game

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return g.pos.InCheck()
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return g.pos.IsCheckmate()
}

// IsStalemate reports whether the side to move has no legal move and is not in check.
func (g *Game) IsStalemate() bool {
	return g.pos.IsStalemate()
}

// IsDraw reports whether the game is drawn by stalemate or the
// half-move clock reaching the 50-move limit. Threefold repetition is
// out of scope: Game keeps a full position history but does not index
// it for repetition lookups.
func (g *Game) IsDraw() bool {
	if g.pos.IsStalemate() {
		return true
	}
	return g.pos.HalfMoveClock >= 50
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (g *Game) HasLegalMoves() bool {
	return g.pos.HasLegalMoves()
}

// Result describes the outcome of a finished game, or ResultInProgress
// if play has not yet ended.
type Result int

const (
	ResultInProgress Result = iota
	ResultCheckmate
	ResultStalemate
	ResultDraw
)

// String returns a short label for the result.
func (r Result) String() string {
	switch r {
	case ResultCheckmate:
		return "checkmate"
	case ResultStalemate:
		return "stalemate"
	case ResultDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// GameResult classifies the current position's termination state,
// generating the legal move list once via HasLegalMoves rather than
// once per predicate.
func (g *Game) GameResult() Result {
	if !g.HasLegalMoves() {
		if g.IsCheck() {
			return ResultCheckmate
		}
		return ResultStalemate
	}
	if g.pos.HalfMoveClock >= 50 {
		return ResultDraw
	}
	return ResultInProgress
}
