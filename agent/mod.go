package agent

import (
	"errors"
	"fmt"
	"strings"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
)

var ErrUnknownKind = errors.New("unknown agent kind")

// Kind is the closed set of agents that can take a side.
type Kind uint8

const (
	KindMCTS Kind = iota
	KindMinimax
	KindRandom
	KindHuman
)

var kindsByName = map[string]Kind{
	"mcts":    KindMCTS,
	"minimax": KindMinimax,
	"random":  KindRandom,
	"user":    KindHuman,
	"human":   KindHuman,
}

// ParseKind accepts mcts, minimax, random and user (or human), in any case.
func ParseKind(name string) (Kind, error) {
	kind, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w %q, expected one of %s", ErrUnknownKind, name, strings.Join(KindNames(), ", "))
	}
	return kind, nil
}

func KindNames() []string {
	return []string{"mcts", "minimax", "random", "user"}
}

func (k Kind) String() string {
	switch k {
	case KindMCTS:
		return "monte carlo tree search"
	case KindMinimax:
		return "minimax"
	case KindRandom:
		return "random"
	case KindHuman:
		return "user"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Settings are shared by every kind; each one reads what it needs.
type Settings struct {
	Seed    uint64
	Rounds  int             // MCTS rounds per move
	Metrics bool            // Count search work of MCTS and minimax
	Console *player.Console // Humans on one terminal must share it, nil means stdio
}

// Agent chooses moves for one side.
type Agent struct {
	kind    Kind
	mcts    *searcher.MCTS
	minimax *searcher.Minimax
	random  *Random
	human   *player.Human
}

func New(kind Kind, settings Settings) *Agent {
	a := &Agent{kind: kind}
	switch kind {
	case KindMCTS:
		options := []searcher.Option{searcher.WithSeed(settings.Seed), searcher.WithRounds(settings.Rounds)}
		if settings.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		a.mcts = searcher.NewMCTS(options...)
	case KindMinimax:
		var collector metrics.Collector
		if settings.Metrics {
			collector = metrics.NewCollector()
		}
		a.minimax = searcher.NewMinimax(collector)
	case KindRandom:
		a.random = NewRandom(settings.Seed)
	case KindHuman:
		console := settings.Console
		if console == nil {
			console = player.Stdio()
		}
		a.human = player.NewHuman(console)
	default:
		panic(fmt.Sprintf("unexpected agent kind %d", kind))
	}
	return a
}

func (a *Agent) Kind() Kind {
	return a.kind
}

func (a *Agent) String() string {
	return a.kind.String()
}

func (a *Agent) FindMove(position *game.Position) (game.Cell, metrics.SearchMetric, error) {
	switch a.kind {
	case KindMCTS:
		return a.mcts.FindMove(position)
	case KindMinimax:
		return a.minimax.FindMove(position)
	case KindRandom:
		return a.random.FindMove(position)
	case KindHuman:
		return a.human.FindMove(position)
	default:
		panic(fmt.Sprintf("unexpected agent kind %d", a.kind))
	}
}
