package experiments

import (
	"fmt"
	"io"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 20 // Per match up

var roundsConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "mcts", Rounds: 16},
	{ID: 2, Kind: "mcts", Rounds: 128},
	{ID: 3, Kind: "mcts", Rounds: 1024},
	{ID: 4, Kind: "mcts", Rounds: searcher.DefaultRounds},
}

// MatchUp is one pairing of an experiment, first config playing X.
type MatchUp [2]metrics.AgentConfig

// RoundsMatchUps pairs a random X, then a minimax X, against MCTS with a
// growing number of rounds as O.
func RoundsMatchUps() ([]metrics.AgentConfig, []MatchUp) {
	random := metrics.AgentConfig{ID: 0, Kind: "random"}
	minimax := metrics.AgentConfig{ID: 5, Kind: "minimax"}
	matchUps := []MatchUp{}
	for _, config := range roundsConfigs {
		matchUps = append(matchUps, MatchUp{random, config})
	}
	for _, config := range roundsConfigs {
		matchUps = append(matchUps, MatchUp{minimax, config})
	}

	configs := append([]metrics.AgentConfig{random}, roundsConfigs...)
	return append(configs, minimax), matchUps
}

// RunRoundsExperiment plays the rounds match ups and stores their records
// under outputDir.
func RunRoundsExperiment(outputDir string, games int, seed uint64) ([]metrics.Summary, error) {
	configs, matchUps := RoundsMatchUps()
	return RunExperiment("rounds", outputDir, configs, matchUps, games, seed)
}

func RunExperiment(name, outputDir string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, seed uint64) ([]metrics.Summary, error) {
	count := 0
	gameRecords := []metrics.GameMetric{}
	moveRecords := []metrics.MoveMetric{}
	summaries := []metrics.Summary{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		configX, configO := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between x=%s and o=%s...", mi+1, len(matchUps), configX, configO)

		x, err := newAgent(configX, seed+uint64(2*mi))
		if err != nil {
			return nil, err
		}
		o, err := newAgent(configO, seed+uint64(2*mi+1))
		if err != nil {
			return nil, err
		}
		e := engine.LocalEngine(x, o, games,
			engine.WithOutput(io.Discard),
			engine.WithRenderer(engine.NewRenderer(io.Discard, false)),
			engine.WithRunID(fmt.Sprintf("%s-%d", name, mi+1)),
		)
		results, err := e.Run()
		if err != nil {
			return nil, fmt.Errorf("matchup %d: %w", mi+1, err)
		}

		// Number games across the whole experiment
		rounds := make(map[int]int, len(results.Games))
		for _, g := range results.Games {
			count++
			rounds[g.Round] = count
			g.Round = count
			g.PlayerX = configX.String()
			g.PlayerO = configO.String()
			gameRecords = append(gameRecords, g)
		}
		for _, mm := range results.Moves {
			mm.Round = rounds[mm.Round]
			moveRecords = append(moveRecords, mm)
		}

		summary := e.Summary(results)
		summary.PlayerX = configX.String()
		summary.PlayerO = configO.String()
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: x win %d, o win %d, draw %d",
			mi+1, len(matchUps), results.XWins, results.OWins, results.Draws)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outputDir, name+"-"+metrics.NewRunID())
	if err != nil {
		return nil, err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored %s experiment records in %s", name, writer.Dir())

	return summaries, nil
}

func newAgent(config metrics.AgentConfig, seed uint64) (*agent.Agent, error) {
	kind, err := agent.ParseKind(config.Kind)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	if kind == agent.KindHuman {
		return nil, fmt.Errorf("agent %d: experiments cannot wait for a user", config.ID)
	}
	return agent.New(kind, agent.Settings{Seed: seed, Rounds: config.Rounds, Metrics: true}), nil
}
