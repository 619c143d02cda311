// Package uci implements a minimal subset of the Universal Chess
// Interface protocol: enough to hand a position to the engine and get
// a best move back. It carries no search heuristics of its own --
// time management, pondering, and multi-PV are out of scope -- it only
// translates text commands into calls against internal/game and
// internal/search.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chesscore/internal/board"
	"chesscore/internal/config"
	"chesscore/internal/game"
	"chesscore/internal/search"
)

// UCI holds the running game and search configuration for one session.
type UCI struct {
	cfg config.Config
	g   *game.Game
	out io.Writer
}

// New creates a UCI handler seeded with cfg's defaults: the session
// starts from cfg.StartFEN, or from the standard starting position if
// that FEN does not parse.
func New(cfg config.Config, out io.Writer) *UCI {
	g, err := game.NewGame(cfg.StartFEN)
	if err != nil {
		g = game.NewDefaultGame()
	}
	return &UCI{
		cfg: cfg,
		g:   g,
		out: out,
	}
}

// Run reads commands from in until EOF or a "quit" command.
func (u *UCI) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.g = game.NewDefaultGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "perft":
			u.handlePerft(args)
		case "quit":
			return
		default:
			fmt.Fprintf(u.out, "info string unknown command %s\n", cmd)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name chesscore")
	fmt.Fprintln(u.out, "id author chesscore contributors")
	fmt.Fprintln(u.out, "uciok")
}

func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	idx := 0
	switch args[0] {
	case "startpos":
		u.g = game.NewDefaultGame()
		idx = 1
	case "fen":
		movesIdx := len(args)
		for i, a := range args {
			if a == "moves" {
				movesIdx = i
				break
			}
		}
		fen := strings.Join(args[1:movesIdx], " ")
		g, err := game.NewGame(fen)
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid fen: %v\n", err)
			return
		}
		u.g = g
		idx = movesIdx
	default:
		return
	}

	if idx < len(args) && args[idx] == "moves" {
		for _, lan := range args[idx+1:] {
			if err := u.g.MakeLAN(lan); err != nil {
				fmt.Fprintf(u.out, "info string illegal move %s: %v\n", lan, err)
				return
			}
		}
	}
}

func (u *UCI) handleGo(args []string) {
	depth := u.cfg.SearchDepth
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}

	pos := u.g.Position()
	s := search.New(u.cfg.Weights())
	best, score := s.RootSearch(pos, depth)

	fmt.Fprintf(u.out, "info depth %d score cp %d nodes %d\n", depth, score, s.Nodes)
	if best == board.NoMove {
		fmt.Fprintln(u.out, "bestmove 0000")
		return
	}
	fmt.Fprintf(u.out, "bestmove %s\n", best.String(pos.SideToMove))
}

func (u *UCI) handlePerft(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(u.out, "info string perft requires a depth argument")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(u.out, "info string invalid perft depth: %s\n", args[0])
		return
	}
	fmt.Fprintf(u.out, "perft %d: %d\n", depth, u.g.Perft(depth))
}
