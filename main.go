package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"othello/experiments"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"othello/tui"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	tournament := flag.Bool("experiment", false, "Run a tournament between CPU difficulty tiers instead of the interactive game")
	throughput := flag.Bool("throughput", false, "Time the hard searcher with increasing goroutine counts")
	configPath := flag.String("config", "", "YAML tournament config (defaults to every tier against every other)")
	games := flag.Int("games", 0, "Games per matchup, overriding the config")
	goroutines := flag.String("goroutines", "1,2,4,8", "Comma separated goroutine counts for -throughput")
	positions := flag.Int("positions", 20, "Sampled positions for -throughput")
	seed := flag.Uint64("seed", 1, "Seed for sampling positions in -throughput")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logFile := flag.String("log", "", "Log file for the interactive game (logs are discarded otherwise)")
	mode := flag.String("mode", "", "Interactive game mode, pvp or pvc (asks when empty)")
	difficulty := flag.String("difficulty", "", "CPU difficulty, easy, medium or hard (asks when empty)")
	side := flag.String("side", "black", "Side of the human player against the CPU")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch {
	case *tournament:
		setupLogger(os.Stderr)
		err = runTournament(*configPath, *games)
	case *throughput:
		setupLogger(os.Stderr)
		err = runThroughput(*goroutines, *positions, *seed)
	default:
		var options []tui.Option
		if options, err = interactiveOptions(*mode, *difficulty, *side); err == nil {
			err = runInteractive(*logFile, options...)
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(w io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
}

func runTournament(path string, games int) error {
	cfg := experiments.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = experiments.LoadConfig(path); err != nil {
			return err
		}
	}
	if games > 0 {
		cfg.Games = games
	}
	_, err := experiments.RunTournament(cfg, os.Stdout)
	return err
}

func runThroughput(list string, positions int, seed uint64) error {
	counts, err := parseCounts(list)
	if err != nil {
		return err
	}
	_, err = experiments.RunThroughputExperiment(counts, positions, seed, os.Stdout)
	return err
}

// parseCounts parses a comma separated list of positive integers.
func parseCounts(list string) ([]int, error) {
	var counts []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid goroutine count %q", field)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// interactiveOptions turns the interactive flags into UI options. Empty
// mode and difficulty leave the choice to the menus.
func interactiveOptions(mode, difficulty, side string) ([]tui.Option, error) {
	var options []tui.Option
	if mode != "" {
		m, err := player.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		options = append(options, tui.WithMode(m))
	}
	if difficulty != "" {
		d, err := searcher.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		options = append(options, tui.WithDifficulty(d))
	}
	human, err := game.ParseDisc(side)
	if err != nil {
		return nil, err
	}
	return append(options, tui.WithHumanSide(human)), nil
}

// runInteractive plays on the terminal. The screen owns stdout and stderr,
// so logs go to a file when one is given.
func runInteractive(path string, options ...tui.Option) error {
	out := io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return tui.Run(screen, options...)
}
