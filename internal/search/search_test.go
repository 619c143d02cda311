package search

import (
	"testing"

	"chesscore/internal/board"
	"github.com/stretchr/testify/require"
)

func TestRootSearchFindsMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is a back rank mate in one.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	s := New(DefaultWeights)
	m, _ := s.RootSearch(pos, 1)
	require.Equal(t, "a1a8", m.String(pos.SideToMove))
}

func TestNegamaxEquivalentToPlainSearchAtShallowDepth(t *testing.T) {
	// Alpha-beta pruning must not change the root score compared
	// to an unpruned search at a shallow depth on a quiet position.
	pos := board.NewPosition()

	pruned := New(DefaultWeights)
	_, prunedScore := pruned.RootSearch(pos, 2)

	plain := New(DefaultWeights)
	_, plainScore := plain.negamaxUnpruned(pos, 2)

	require.Equal(t, plainScore, prunedScore)
}

// negamaxUnpruned is a reference implementation with alpha/beta fixed
// wide open, used only to cross-check the pruned search's score.
func (s *Searcher) negamaxUnpruned(pos *board.Position, depth int) (board.Move, int) {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if pos.InCheck() {
			return board.NoMove, -maxScore
		}
		return board.NoMove, 0
	}
	if depth == 0 {
		return board.NoMove, Evaluate(pos, s.Weights)
	}

	best := board.NoMove
	bestScore := -maxScore
	for i := 0; i < moves.Len(); i++ {
		child := pos.Copy()
		child.Make(moves.Get(i))
		_, childScore := s.negamaxUnpruned(child, depth-1)
		score := -childScore
		if best == board.NoMove || score > bestScore {
			bestScore = score
			best = moves.Get(i)
		}
	}
	return best, bestScore
}
