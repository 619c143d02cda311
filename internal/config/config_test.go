package config

import (
	"testing"

	"chesscore/internal/board"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load("/nonexistent/chesscore.toml")
	require.NoError(t, err)
	require.Equal(t, board.StartFEN, c.StartFEN)
	require.Equal(t, 4, c.SearchDepth)
}

func TestDefaultWeightsMatchSearchPackage(t *testing.T) {
	c := Default()
	w := c.Weights()
	require.Equal(t, 100, w[board.Pawn])
	require.Equal(t, 1_000_000, w[board.King])
}
