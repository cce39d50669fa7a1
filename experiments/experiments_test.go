package experiments

import (
	"bytes"
	"os"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
games: 2
agents:
  - id: 1
    difficulty: easy
    seed: 9
  - id: 2
    difficulty: Medium
  - id: 3
    difficulty: hard
    depth: 1
    goroutines: 2
matchups:
  - [1, 2]
  - [2, 3]
`

func TestParseConfig(t *testing.T) {
	t.Run("decoding agents and matchups", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(sampleConfig))

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Games)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 1, Difficulty: searcher.Easy, Seed: 9},
			{ID: 2, Difficulty: searcher.Medium},
			{ID: 3, Difficulty: searcher.Hard, Depth: 1, Goroutines: 2},
		}, cfg.Agents)
		require.Equal(t, [][]int{{1, 2}, {2, 3}}, cfg.Matchups)
	})

	t.Run("loading from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tournament.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Len(t, cfg.Agents, 3)
	})

	t.Run("rejecting bad configs", func(t *testing.T) {
		_, err := ParseConfig([]byte("agents:\n  - id: 1\n    difficulty: godlike\n"))
		require.Error(t, err, "Unknown difficulty")

		_, err = ParseConfig([]byte("agents:\n  - id: 1\nmatchups:\n  - [1, 4]\n"))
		require.Error(t, err, "Unknown agent in matchup")

		_, err = ParseConfig([]byte("agents:\n  - id: 1\n  - id: 1\n"))
		require.Error(t, err, "Duplicate agent id")

		_, err = ParseConfig([]byte("games: 0\n"))
		require.Error(t, err, "Non-positive game count")

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("default config is valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().validate())
	})
}

func TestRunTournament(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	var out bytes.Buffer

	summaries, err := RunTournament(cfg, &out)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for _, s := range summaries {
		require.Equal(t, 2, s.Games)
		require.Equal(t, s.Games, s.WinsA+s.WinsB+s.Draws, "Every game has exactly one outcome")
	}
	require.Equal(t, 1, summaries[0].AgentA)
	require.Equal(t, 2, summaries[0].AgentB)
	require.Greater(t, summaries[1].TotalNodesB, 0.0, "Search metrics should be collected")

	csv := out.String()
	require.True(t, strings.HasPrefix(csv, "id,difficulty,goroutines,depth,seed\n"))
	require.Contains(t, csv, "3,hard,2,1,0\n")
	require.Contains(t, csv, "agent_a,agent_b,games,wins_a,wins_b,draws")
}

func TestRunGameVariesSeededAgents(t *testing.T) {
	cfg := DefaultConfig()
	easy, medium := cfg.agent(1), cfg.agent(2)
	require.NotZero(t, easy.Seed, "Default easy tier should be seeded")

	first, err := runGame(easy, medium, 0, metrics.NewCollector(easy.ID, medium.ID))
	require.NoError(t, err)
	again, err := runGame(easy, medium, 0, metrics.NewCollector(easy.ID, medium.ID))
	require.NoError(t, err)
	third, err := runGame(easy, medium, 2, metrics.NewCollector(easy.ID, medium.ID))
	require.NoError(t, err)

	require.Equal(t, moveList(first), moveList(again), "Same game index should replay the same game")
	require.NotEqual(t, moveList(first), moveList(third), "Games with the same colors should not repeat")
}

func moveList(result engine.Result) []game.Move {
	moves := make([]game.Move, 0, len(result.Moves))
	for _, record := range result.Moves {
		moves = append(moves, record.Move)
	}
	return moves
}

func TestRunThroughputExperiment(t *testing.T) {
	var out bytes.Buffer

	records, err := RunThroughputExperiment([]int{1, 2}, 2, 4, &out)

	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		require.Equal(t, 2, r.Searches)
		require.Greater(t, r.NodesPerSecond, 0.0)
	}
	require.True(t, strings.HasPrefix(out.String(), "goroutines,searches,"))
}

func TestSamplePositions(t *testing.T) {
	sample := samplePositions(5, 1)

	require.Len(t, sample, 5)
	for _, state := range sample {
		require.Greater(t, len(state.LegalMoves(state.Turn())), 1, "Sampled positions should offer a choice")
	}
}
