package searcher

import (
	"math"
	"othello/game"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

// Minimax searches a fixed number of plies with alpha-beta pruning and scores
// the leaves with a static evaluation from the searching side's perspective.
type Minimax struct {
	mu         sync.Mutex
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    MetricsCollector
	last       SearchMetrics
}

func NewMinimax(options ...Option) *Minimax {
	cfg := newConfig(options)
	return &Minimax{
		depth:      cfg.depth,
		goroutines: cfg.goroutines,
		evaluate:   cfg.evaluate,
		metrics:    cfg.metrics,
	}
}

// FindMove scores every legal move of root with a full-window search, the
// opponent replying first, and returns the highest. Ties keep the earliest.
func (m *Minimax) FindMove(state *game.GameState, root game.Disc) (game.Move, error) {
	moves, err := legalMoves(state, root)
	if err != nil {
		return game.Move{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.metrics.Start()
	scores := m.scoreMoves(state, moves, root)

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	m.last = m.metrics.Complete()

	if e := log.Debug(); e.Enabled() {
		after := state.Copy()
		after.PlayMove(moves[best], root)
		static := game.EvaluateDetailed(after, root)
		e.Stringer("side", root).
			Stringer("move", moves[best]).
			Int("score", scores[best]).
			Int("material", static.Material).
			Int("mobility", static.Mobility).
			Int("positional", static.Positional).
			Int("candidates", len(moves)).
			Int64("nodes", m.last.Nodes).
			Int64("cutoffs", m.last.Cutoffs).
			Msg("minimax selected move")
	}

	return moves[best], nil
}

func (m *Minimax) Metrics() SearchMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last
}

// scoreMoves returns the search score of each move, index-aligned with moves.
func (m *Minimax) scoreMoves(state *game.GameState, moves []game.Move, root game.Disc) []int {
	scores := make([]int, len(moves))
	if m.goroutines <= 1 || len(moves) == 1 {
		for i, move := range moves {
			scores[i] = m.scoreMove(state, move, root)
		}
		return scores
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				scores[i] = m.scoreMove(state, moves[i], root)
			}
		}()
	}

	wg.Wait()
	return scores
}

func (m *Minimax) scoreMove(state *game.GameState, move game.Move, root game.Disc) int {
	child := state.Copy()
	child.PlayMove(move, root)
	return m.search(child, m.depth, false, root, negInf, posInf)
}

// search returns the minimax value of state for root. The side to move is
// root on maximizing plies and its opponent otherwise. A side without legal
// moves passes, which costs one unit of depth.
func (m *Minimax) search(state *game.GameState, depth int, maximizing bool, root game.Disc, alpha, beta int) int {
	m.metrics.AddNode()

	if depth == 0 || state.IsOver() {
		return m.evaluate(state, root)
	}

	side := root
	if !maximizing {
		side = root.Opponent()
	}

	moves := state.LegalMoves(side)
	if len(moves) == 0 {
		m.metrics.AddPass()
		return m.search(state, depth-1, !maximizing, root, alpha, beta)
	}

	if maximizing {
		maxScore := negInf
		for _, move := range moves {
			child := state.Copy()
			child.PlayMove(move, side)
			score := m.search(child, depth-1, false, root, alpha, beta)
			maxScore = max(maxScore, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return maxScore
	}

	minScore := posInf
	for _, move := range moves {
		child := state.Copy()
		child.PlayMove(move, side)
		score := m.search(child, depth-1, true, root, alpha, beta)
		minScore = min(minScore, score)
		beta = min(beta, score)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return minScore
}
