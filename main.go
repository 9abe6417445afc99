package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"tictactoe/agent"
	"tictactoe/config"
	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/experiments/metrics"
	"tictactoe/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("tictactoe failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	flags := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	kinds := strings.Join(agent.KindNames(), ", ")
	configPath := flags.String("config", "config.yml", "Path to a YAML configuration file")
	playerX := flags.String("x", meta.DEFAULT_PLAYER_X, "Agent playing X: "+kinds)
	playerO := flags.String("o", meta.DEFAULT_PLAYER_O, "Agent playing O: "+kinds)
	games := flags.Int("g", meta.MINIMUM_GAMES, "Number of games to play")
	seed := flags.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	rounds := flags.Int("rounds", 0, "MCTS rounds per move")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn, error")
	output := flags.String("output", "", "Directory for run records, none when empty")
	noColor := flags.Bool("no-color", false, "Disable coloured marks")
	experiment := flags.String("experiment", "", "Run an experiment instead of a match: rounds")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Flags set on the command line win over the configuration.
	gamesSet := false
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			cfg.PlayerX = *playerX
		case "o":
			cfg.PlayerO = *playerO
		case "g":
			cfg.Games = *games
			gamesSet = true
		case "seed":
			cfg.Seed = *seed
		case "rounds":
			cfg.MCTSRounds = *rounds
		case "log-level":
			cfg.LogLevel = *logLevel
		case "output":
			cfg.OutputDir = *output
		case "no-color":
			cfg.NoColor = *noColor
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.Level())

	base := cfg.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	if *experiment != "" {
		return runExperiment(*experiment, cfg, gamesSet, base)
	}

	kindX, err := agent.ParseKind(cfg.PlayerX)
	if err != nil {
		return fmt.Errorf("player x: %w", err)
	}
	kindO, err := agent.ParseKind(cfg.PlayerO)
	if err != nil {
		return fmt.Errorf("player o: %w", err)
	}

	withMetrics := cfg.OutputDir != ""
	x := agent.New(kindX, agent.Settings{Seed: base, Rounds: cfg.MCTSRounds, Metrics: withMetrics})
	o := agent.New(kindO, agent.Settings{Seed: base + 1, Rounds: cfg.MCTSRounds, Metrics: withMetrics})

	runID := metrics.NewRunID()
	log.Info().Str("run", runID).Uint64("seed", base).Msgf("%s against %s, %d games", x, o, cfg.Games)

	e := engine.LocalEngine(x, o, cfg.Games,
		engine.WithOutput(os.Stdout),
		engine.WithRenderer(engine.NewRenderer(os.Stdout, !cfg.NoColor)),
		engine.WithRunID(runID),
	)
	results, err := e.Run()
	if err != nil {
		return err
	}

	if withMetrics {
		return writeRecords(cfg.OutputDir, runID, e.Summary(results), results)
	}
	return nil
}

func runExperiment(name string, cfg *config.Config, gamesSet bool, seed uint64) error {
	if name != "rounds" {
		return fmt.Errorf("unknown experiment %q", name)
	}
	games := experiments.NumGames
	if gamesSet {
		games = cfg.Games
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = meta.DEFAULT_OUTPUT_DIR
	}

	summaries, err := experiments.RunRoundsExperiment(dir, games, seed)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Printf("%s vs %s: x win %d, o win %d, draw %d\n", s.PlayerX, s.PlayerO, s.XWins, s.OWins, s.Draws)
	}
	return nil
}

func writeRecords(dir, runID string, summary metrics.Summary, results engine.Results) error {
	w, err := metrics.NewWriter(dir, runID)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords(results.Games); err != nil {
		return err
	}
	if err := w.WriteMoveRecords(results.Moves); err != nil {
		return err
	}
	if err := w.WriteSummary(summary); err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", w.Dir())
	return nil
}
