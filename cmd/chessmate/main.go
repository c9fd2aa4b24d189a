package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"chessmate/pkg/game"
	"chessmate/pkg/gui"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	fen := flag.String("fen", "", "FEN of the starting position (default: standard)")
	configPath := flag.String("config", "", "path to JSON config file")
	themeName := flag.String("theme", "", "theme name (overrides config)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "chessmate needs an interactive terminal")
		os.Exit(1)
	}

	game.InitLog(*logPath, "CHESSMATE: ")

	cfg, err := gui.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	theme, err := gui.PickTheme(cfg, *themeName)
	if err != nil {
		log.Fatal(err)
	}

	g := game.New()
	if *fen != "" {
		g, err = game.FromFEN(*fen)
		if err != nil {
			log.Fatalf("bad -fen: %v", err)
		}
	}
	log.Printf("New game: %s", g.Name())

	ui := gui.New(g, theme)
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}
