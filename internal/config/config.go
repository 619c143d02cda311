// Package config loads engine and CLI defaults from an optional TOML
// file, falling back to built-in values for anything the file omits.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"chesscore/internal/board"
	"chesscore/internal/search"
)

// Config holds the tunable defaults for the CLI and UCI frontend.
type Config struct {
	StartFEN    string `toml:"start_fen"`
	SearchDepth int    `toml:"search_depth"`

	// MaterialWeights overrides search.DefaultWeights. Any entry absent
	// from the file keeps the corresponding default weight; an entry
	// set explicitly, including to zero, is used as given.
	MaterialWeights struct {
		Pawn   int `toml:"pawn"`
		Rook   int `toml:"rook"`
		Knight int `toml:"knight"`
		Bishop int `toml:"bishop"`
		Queen  int `toml:"queen"`
		King   int `toml:"king"`
	} `toml:"material_weights"`
}

// Default returns the built-in configuration: the standard starting
// position, a conservative default search depth, and the default
// material weights.
func Default() Config {
	var c Config
	c.StartFEN = board.StartFEN
	c.SearchDepth = 4
	c.MaterialWeights.Pawn = search.DefaultWeights[board.Pawn]
	c.MaterialWeights.Rook = search.DefaultWeights[board.Rook]
	c.MaterialWeights.Knight = search.DefaultWeights[board.Knight]
	c.MaterialWeights.Bishop = search.DefaultWeights[board.Bishop]
	c.MaterialWeights.Queen = search.DefaultWeights[board.Queen]
	c.MaterialWeights.King = search.DefaultWeights[board.King]
	return c
}

// Load reads path as a TOML file and merges it over Default(). A
// missing file is not an error -- Load simply returns the defaults. A
// malformed file is an error.
func Load(path string) (Config, error) {
	c := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}

	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Weights returns the configured material weight table as a
// search.Weights value.
func (c Config) Weights() search.Weights {
	var w search.Weights
	w[board.Pawn] = c.MaterialWeights.Pawn
	w[board.Rook] = c.MaterialWeights.Rook
	w[board.Knight] = c.MaterialWeights.Knight
	w[board.Bishop] = c.MaterialWeights.Bishop
	w[board.Queen] = c.MaterialWeights.Queen
	w[board.King] = c.MaterialWeights.King
	return w
}
