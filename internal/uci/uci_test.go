package uci

import (
	"strings"
	"testing"

	"chesscore/internal/config"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, script string) string {
	t.Helper()
	var out strings.Builder
	u := New(config.Default(), &out)
	u.Run(strings.NewReader(script))
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := run(t, "uci\nisready\nquit\n")
	require.Contains(t, out, "uciok")
	require.Contains(t, out, "readyok")
}

func TestPerftCommand(t *testing.T) {
	out := run(t, "position startpos\nperft 3\nquit\n")
	require.Contains(t, out, "perft 3: 8902")
}

func TestPositionMovesReplay(t *testing.T) {
	out := run(t, "position startpos moves e2e4 e7e5\nperft 1\nquit\n")
	require.Contains(t, out, "perft 1: 29")
}

func TestGoReturnsBestMove(t *testing.T) {
	out := run(t, "position fen 6k1/5ppp/8/8/8/8/8/R6K w - - 0 1\ngo depth 1\nquit\n")
	require.Contains(t, out, "bestmove a1a8")
}
