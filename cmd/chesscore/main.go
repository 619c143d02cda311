// Command chesscore is a UCI-subset frontend over the move generator,
// legality filter, and material-only search in this module.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"

	"chesscore/internal/config"
	"chesscore/internal/game"
	"chesscore/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	configPath = flag.String("config", "chesscore.toml", "path to a TOML config file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("warning: failed to load %s: %v (using defaults)", *configPath, err)
		cfg = config.Default()
	}

	// A bare "chesscore perft <fen> <depth>" runs a single scripted
	// perft check and exits, without entering the UCI REPL.
	if flag.NArg() >= 1 && flag.Arg(0) == "perft" {
		runPerft(cfg, flag.Args()[1:])
		return
	}

	protocol := uci.New(cfg, os.Stdout)
	protocol.Run(os.Stdin)
}

func runPerft(cfg config.Config, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: chesscore perft <fen> <depth>")
		os.Exit(2)
	}

	depth, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid depth %q: %v\n", args[1], err)
		os.Exit(2)
	}

	g, err := game.NewGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", args[0], err)
		os.Exit(2)
	}

	fmt.Println(g.Perft(depth))
}
