package searcher

import (
	"othello/game"
	"sync"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves.
type Random struct {
	mu      sync.Mutex
	rng     *rand.Rand
	metrics MetricsCollector
	last    SearchMetrics
}

func NewRandom(options ...Option) *Random {
	cfg := newConfig(options)
	return &Random{
		rng:     rand.New(rand.NewSource(cfg.seed)),
		metrics: cfg.metrics,
	}
}

func (r *Random) FindMove(state *game.GameState, side game.Disc) (game.Move, error) {
	moves, err := legalMoves(state, side)
	if err != nil {
		return game.Move{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.metrics.Start()
	move := moves[r.rng.Intn(len(moves))]
	r.metrics.AddNode()
	r.last = r.metrics.Complete()
	return move, nil
}

func (r *Random) Metrics() SearchMetrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.last
}
