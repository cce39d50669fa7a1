package metrics

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GameMetric is the outcome of one game between two agents, seen from agent
// A's side of the matchup.
type GameMetric struct {
	AgentABlack bool // Whether agent A played black
	DiscsA      int
	DiscsB      int
	Moves       int
	Passes      int
	Duration    time.Duration
}

// MoveMetric describes one CPU move.
type MoveMetric struct {
	Agent    int // AgentConfig.ID
	Duration time.Duration
	Nodes    int64
}

// Summary aggregates the games of one matchup.
type Summary struct {
	AgentA        int
	AgentB        int
	Games         int
	WinsA         int
	WinsB         int
	Draws         int
	MeanMargin    float64 // Mean of DiscsA - DiscsB
	StdDevMargin  float64
	MeanMoveTimeA time.Duration
	MeanMoveTimeB time.Duration
	TotalNodesA   float64
	TotalNodesB   float64
}

type Collector interface {
	AddGame(game GameMetric)
	AddMove(move MoveMetric)
	Complete() Summary
}

type collector struct {
	agentA, agentB int
	games          []GameMetric
	moveTimes      map[int][]float64
	nodes          map[int][]float64
}

func NewCollector(agentA, agentB int) Collector {
	return &collector{
		agentA:    agentA,
		agentB:    agentB,
		moveTimes: make(map[int][]float64),
		nodes:     make(map[int][]float64),
	}
}

func (c *collector) AddGame(game GameMetric) {
	c.games = append(c.games, game)
}

func (c *collector) AddMove(move MoveMetric) {
	c.moveTimes[move.Agent] = append(c.moveTimes[move.Agent], float64(move.Duration))
	c.nodes[move.Agent] = append(c.nodes[move.Agent], float64(move.Nodes))
}

func (c *collector) Complete() Summary {
	s := Summary{AgentA: c.agentA, AgentB: c.agentB, Games: len(c.games)}

	margins := make([]float64, 0, len(c.games))
	for _, g := range c.games {
		switch {
		case g.DiscsA > g.DiscsB:
			s.WinsA++
		case g.DiscsB > g.DiscsA:
			s.WinsB++
		default:
			s.Draws++
		}
		margins = append(margins, float64(g.DiscsA-g.DiscsB))
	}

	s.MeanMargin, s.StdDevMargin = meanStdDev(margins)
	s.MeanMoveTimeA = time.Duration(mean(c.moveTimes[c.agentA]))
	s.MeanMoveTimeB = time.Duration(mean(c.moveTimes[c.agentB]))
	s.TotalNodesA = floats.Sum(c.nodes[c.agentA])
	s.TotalNodesB = floats.Sum(c.nodes[c.agentB])
	return s
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// meanStdDev returns the sample standard deviation, or 0 with fewer than two
// samples.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return mean(x), 0
	}
	return stat.MeanStdDev(x, nil)
}
