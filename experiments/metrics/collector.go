package metrics

import (
	"fmt"
	"time"
)

// SearchMetric describes the work an agent did to find one move.
type SearchMetric struct {
	Duration     time.Duration
	Episodes     int // MCTS rounds
	FullPlayouts int // Rollouts that reached an outcome
	Nodes        int // Tree nodes built or positions evaluated
}

type MoveMetric struct {
	Round int
	Step  int
	Side  string
	Agent string
	Cell  string
	SearchMetric
}

type GameMetric struct {
	Round      int
	PlayerX    string
	PlayerO    string
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	AddNodes(n int)
	Complete() SearchMetric
}

// collector is used by one single-threaded searcher, so plain counters suffice.
type collector struct {
	startTime    time.Time
	episodes     int
	fullPlayouts int
	nodes        int
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.fullPlayouts = 0
	m.nodes = 0
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) AddNodes(n int) {
	m.nodes += n
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
		Nodes:        m.nodes,
	}
}

type dummyCollector struct {
	startTime time.Time
}

// NewDummyCollector only measures the search duration.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()          { m.startTime = time.Now() }
func (m *dummyCollector) AddEpisode()     {}
func (m *dummyCollector) AddFullPlayout() {}
func (m *dummyCollector) AddNodes(int)    {}
func (m *dummyCollector) Complete() SearchMetric {
	return SearchMetric{Duration: time.Since(m.startTime)}
}

// AgentConfig identifies one agent setup of an experiment.
type AgentConfig struct {
	ID     int
	Kind   string
	Rounds int // MCTS only
}

func (c AgentConfig) String() string {
	if c.Rounds > 0 {
		return fmt.Sprintf("%s (%d rounds)", c.Kind, c.Rounds)
	}
	return c.Kind
}
