package searcher

import (
	"othello/game"
	"sync"
)

// Greedy looks one ply ahead and keeps the move after which the acting side
// owns the most discs. Ties go to the earliest move in scan order.
type Greedy struct {
	mu      sync.Mutex
	metrics MetricsCollector
	last    SearchMetrics
}

func NewGreedy(options ...Option) *Greedy {
	cfg := newConfig(options)
	return &Greedy{metrics: cfg.metrics}
}

func (g *Greedy) FindMove(state *game.GameState, side game.Disc) (game.Move, error) {
	moves, err := legalMoves(state, side)
	if err != nil {
		return game.Move{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.metrics.Start()
	best := moves[0]
	maxCount := -1
	for _, move := range moves {
		child := state.Copy()
		child.PlayMove(move, side)
		g.metrics.AddNode()

		// Total discs of the acting side, not just the ones this move flips
		if count := child.Count(side); count > maxCount {
			maxCount = count
			best = move
		}
	}
	g.last = g.metrics.Complete()
	return best, nil
}

func (g *Greedy) Metrics() SearchMetrics {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.last
}
