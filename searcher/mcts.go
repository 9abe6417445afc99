package searcher

import (
	"fmt"
	"math"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS searches a single position with UCT. The tree is an arena of nodes
// linked by index and is rebuilt on every FindMove call.
type MCTS struct {
	rounds  int
	random  *rand.Rand
	metrics metrics.Collector
	nodes   []node
	moves   []game.Cell // Rollout scratch buffer
}

func WithRounds(rounds int) Option {
	return func(m *MCTS) {
		if rounds > 0 {
			m.rounds = rounds
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.random = rand.New(rand.NewSource(seed))
	}
}

func WithRand(random *rand.Rand) Option {
	return func(m *MCTS) {
		if random != nil {
			m.random = random
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		rounds:  DefaultRounds,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.random == nil {
		m.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m.nodes = make([]node, 0, m.rounds+game.CellCount)
	m.moves = make([]game.Cell, 0, game.CellCount)
	return m
}

// FindMove returns the root child with the most playouts.
func (m *MCTS) FindMove(position *game.Position) (game.Cell, metrics.SearchMetric, error) {
	m.metrics.Start()
	cell, err := m.search(position)
	m.metrics.AddNodes(len(m.nodes))
	metric := m.metrics.Complete()
	if err != nil {
		return 0, metric, err
	}

	log.Debug().Msgf("mcts chose %s after %d rounds over %d nodes in %v", cell, m.rounds, len(m.nodes), metric.Duration)
	return cell, metric, nil
}

func (m *MCTS) search(position *game.Position) (game.Cell, error) {
	current, err := m.initialize(position)
	if err != nil {
		return 0, err
	}
	if err := m.playout(current); err != nil {
		return 0, err
	}

	for i := 0; i < m.rounds; i++ {
		leaf := m.selectLeaf()
		current, err := m.expand(leaf)
		if err != nil {
			return 0, err
		}
		if err := m.playout(current); err != nil {
			return 0, err
		}
		m.metrics.AddEpisode()
	}

	return m.choose()
}

// initialize resets the arena to a root for position, expands it and returns
// a random child for the first playout.
func (m *MCTS) initialize(position *game.Position) (int, error) {
	m.nodes = append(m.nodes[:0], newNode(*position, 0, noParent))
	if err := m.addChildren(rootIndex); err != nil {
		return rootIndex, err
	}
	return m.randomChild(rootIndex)
}

func (m *MCTS) playout(from int) error {
	outcome, err := m.simulate(from)
	if err != nil {
		return err
	}
	m.backpropagate(from, outcome)
	return nil
}

// selectLeaf descends from the root and stops at the first unvisited child it
// meets, or at a node without children. Otherwise it follows the highest UCT
// child, the first one on ties.
func (m *MCTS) selectLeaf() int {
	current := rootIndex
	for {
		parent := &m.nodes[current]
		if len(parent.children) == 0 {
			return current
		}

		logParent := math.Log(float64(parent.playouts))
		best, bestScore := current, math.Inf(-1)
		for _, index := range parent.children {
			child := &m.nodes[index]
			if child.playouts == 0 {
				return index
			}
			score := uctScore(child.wins, child.playouts, logParent)
			if score > bestScore {
				best, bestScore = index, score
			}
		}
		current = best
	}
}

// expand adds every legal child of leaf and picks one at random. A terminal
// leaf is returned as is.
func (m *MCTS) expand(leaf int) (int, error) {
	if m.nodes[leaf].isTerminal() {
		return leaf, nil
	}
	if err := m.addChildren(leaf); err != nil {
		return leaf, err
	}
	return m.randomChild(leaf)
}

func (m *MCTS) addChildren(parent int) error {
	position := m.nodes[parent].position
	for _, cell := range position.LegalMoves() {
		child := position
		if err := child.PlaceMark(cell); err != nil {
			return fmt.Errorf("expanding %s: %w", cell, err)
		}
		// Appending may move the arena, so parent is indexed after it.
		m.nodes = append(m.nodes, newNode(child, cell, parent))
		m.nodes[parent].children = append(m.nodes[parent].children, len(m.nodes)-1)
	}
	return nil
}

func (m *MCTS) randomChild(parent int) (int, error) {
	children := m.nodes[parent].children
	if len(children) == 0 {
		return parent, ErrEmptyChildSet
	}
	return children[m.random.Intn(len(children))], nil
}

// simulate plays uniformly random moves from a copy of the node's position
// until the game is decided.
func (m *MCTS) simulate(from int) (game.Outcome, error) {
	position := m.nodes[from].position
	for !position.Outcome().Decided() {
		m.moves = position.AppendLegalMoves(m.moves[:0])
		if len(m.moves) == 0 {
			return game.OutcomeNone, ErrNoEmptySquares
		}
		cell := m.moves[m.random.Intn(len(m.moves))]
		if err := position.PlaceMark(cell); err != nil {
			return game.OutcomeNone, fmt.Errorf("rollout: %w", err)
		}
	}
	m.metrics.AddFullPlayout()
	return position.Outcome(), nil
}

// backpropagate walks from a node to the root adding one playout to each.
// A win is credited to the nodes reached by the winner's marks, so the
// credit alternates level by level. A draw credits every node with Draw.
func (m *MCTS) backpropagate(from int, outcome game.Outcome) {
	mover := m.nodes[from].position.SideToMove().Opponent()
	win := outcome.Favors(mover)
	for current := from; current != noParent; current = m.nodes[current].parent {
		n := &m.nodes[current]
		n.playouts++
		switch {
		case outcome == game.Draw:
			n.wins += Draw
		case win:
			n.wins += Win
		}
		win = !win
	}
}

// choose returns the move of the root child with the most playouts, the
// first one on ties.
func (m *MCTS) choose() (game.Cell, error) {
	children := m.nodes[rootIndex].children
	if len(children) == 0 {
		return 0, ErrEmptyChildSet
	}

	best, playouts := -1, 0
	for _, index := range children {
		if n := m.nodes[index].playouts; n > playouts {
			best, playouts = index, n
		}
	}
	if best < 0 {
		return 0, ErrUnableToSelectMove
	}
	return m.nodes[best].move, nil
}
