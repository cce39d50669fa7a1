package experiments

import (
	"fmt"
	"io"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// RunThroughputExperiment times the hard searcher on the same sample of
// positions for each goroutine count and writes the results as CSV to out.
func RunThroughputExperiment(goroutines []int, positions int, seed uint64, out io.Writer) ([]metrics.ThroughputRecord, error) {
	sample := samplePositions(positions, seed)

	log.Info().Msgf("starting throughput experiment on %d positions...", len(sample))

	records := make([]metrics.ThroughputRecord, 0, len(goroutines))
	for _, n := range goroutines {
		m := searcher.NewMinimax(searcher.WithGoroutines(n), searcher.WithMetrics())
		durations := make([]float64, 0, len(sample))
		var nodes int64
		var total time.Duration

		for _, state := range sample {
			if _, err := m.FindMove(state, state.Turn()); err != nil {
				return records, fmt.Errorf("throughput search with %d goroutines: %w", n, err)
			}
			metric := m.Metrics()
			durations = append(durations, float64(metric.Duration))
			nodes += metric.Nodes
			total += metric.Duration
		}

		record := metrics.ThroughputRecord{Goroutines: n, Searches: len(sample)}
		if len(durations) > 0 {
			mean, std := stat.MeanStdDev(durations, nil)
			if len(durations) < 2 {
				std = 0
			}
			record.MeanDuration = time.Duration(mean)
			record.StdDevDuration = time.Duration(std)
		}
		if total > 0 {
			record.NodesPerSecond = float64(nodes) / total.Seconds()
		}
		records = append(records, record)

		log.Info().Msgf("goroutines=%d mean=%s nodes/s=%.0f", n, record.MeanDuration, record.NodesPerSecond)
	}

	if err := metrics.NewWriter(out).WriteThroughput(records); err != nil {
		return records, err
	}
	return records, nil
}

// samplePositions collects positions where the side to move has a choice,
// reached by random play from the opening.
func samplePositions(n int, seed uint64) []*game.GameState {
	rng := rand.New(rand.NewSource(seed))
	sample := make([]*game.GameState, 0, n)
	state := game.NewGameState()
	for len(sample) < n {
		if state.IsOver() {
			state = game.NewGameState()
			continue
		}
		if state.Pass() {
			continue
		}
		moves := state.LegalMoves(state.Turn())
		if len(moves) > 1 {
			sample = append(sample, state.Copy())
		}
		state.PlayMove(moves[rng.Intn(len(moves))], state.Turn())
	}
	return sample
}
