// Package search implements a minimal negamax alpha-beta search over
// material only. It deliberately carries none of the heuristics a
// full engine would add -- no move ordering, no transposition table,
// no quiescence search -- so that its node count is fully determined
// by position and depth alone.
package search

import (
	"chesscore/internal/board"
)

// Weights holds the material value of each piece kind in centipawns,
// indexed by board.PieceType. The zero value is invalid; use
// DefaultWeights or a config-supplied table.
type Weights [6]int

// DefaultWeights mirrors board.PieceValue: Pawn=100, Rook=500,
// Knight=320, Bishop=330, Queen=900, King=1,000,000.
var DefaultWeights = Weights{
	board.Pawn:   100,
	board.Rook:   500,
	board.Knight: 320,
	board.Bishop: 330,
	board.Queen:  900,
	board.King:   1_000_000,
}

// Evaluate scores pos from the perspective of the side to move: positive
// favors the mover, using only material count (no positional terms).
func Evaluate(pos *board.Position, w Weights) int {
	us, them := pos.SideToMove, pos.SideToMove.Other()
	score := 0
	for pt := board.Pawn; pt < board.King; pt++ {
		score += pos.Pieces[us][pt].PopCount() * w[pt]
		score -= pos.Pieces[them][pt].PopCount() * w[pt]
	}
	return score
}

// Searcher runs a negamax alpha-beta search to a fixed depth.
type Searcher struct {
	Weights Weights
	Nodes   int64
}

// New creates a Searcher using the given material weights.
func New(w Weights) *Searcher {
	return &Searcher{Weights: w}
}

// RootSearch searches every legal move in pos to the given depth and
// returns the best move found along with its score, from the
// perspective of the side to move. Moves are tried in the generator's
// natural order with no ordering heuristic. If pos has no legal moves,
// RootSearch returns board.NoMove.
func (s *Searcher) RootSearch(pos *board.Position, depth int) (board.Move, int) {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return board.NoMove, Evaluate(pos, s.Weights)
	}

	best := board.NoMove
	bestScore := -maxScore

	alpha, beta := -maxScore, maxScore
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		child := pos.Copy()
		child.Make(m)

		score := -s.negamax(child, depth-1, -beta, -alpha)
		if best == board.NoMove || score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, bestScore
}

const maxScore = 1 << 30

// negamax evaluates pos to the given depth using alpha-beta pruning.
// The returned score is always from the perspective of pos's side to
// move. Game-over positions (checkmate/stalemate) are scored as a
// terminal node regardless of remaining depth.
func (s *Searcher) negamax(pos *board.Position, depth, alpha, beta int) int {
	s.Nodes++

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if pos.InCheck() {
			// Checkmated: as bad as possible for the side to move.
			return -maxScore
		}
		return 0 // stalemate
	}

	if depth == 0 {
		return Evaluate(pos, s.Weights)
	}

	best := -maxScore
	for i := 0; i < moves.Len(); i++ {
		child := pos.Copy()
		child.Make(moves.Get(i))

		score := -s.negamax(child, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best
}
