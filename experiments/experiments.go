package experiments

import (
	"fmt"
	"io"
	"os"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config lists the agents of a tournament and which of them meet.
type Config struct {
	Games    int                   `yaml:"games"` // Per matchup
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // Pairs of AgentConfig.ID
}

var tierConfigs = []metrics.AgentConfig{
	{ID: 1, Difficulty: searcher.Easy, Seed: 1},
	{ID: 2, Difficulty: searcher.Medium},
	{ID: 3, Difficulty: searcher.Hard, Goroutines: meta.GO_ROUTINES},
}

// DefaultConfig pits every difficulty tier against every other tier.
func DefaultConfig() Config {
	return Config{
		Games:    meta.GAMES,
		Agents:   tierConfigs,
		Matchups: [][]int{{1, 2}, {1, 3}, {2, 3}},
	}
}

// LoadConfig reads a tournament config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML tournament config and checks it.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{Games: meta.GAMES}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
	}
	for _, m := range c.Matchups {
		if len(m) != 2 {
			return fmt.Errorf("matchup %v must name exactly two agents", m)
		}
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("matchup %v refers to unknown agent %d", m, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}

// RunTournament plays every matchup of cfg and writes the agent configs and
// per-matchup summaries as CSV to out.
func RunTournament(cfg Config, out io.Writer) ([]metrics.Summary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting tournament with %d matchups of %d games...", len(cfg.Matchups), cfg.Games)

	summaries := make([]metrics.Summary, 0, len(cfg.Matchups))
	for mi, matchup := range cfg.Matchups {
		config1 := cfg.agent(matchup[0])
		config2 := cfg.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.Matchups), config1, config2)

		collector := metrics.NewCollector(config1.ID, config2.ID)
		for i := 0; i < cfg.Games; i++ {
			// Alternate colors so neither agent always moves first
			if _, err := runGame(config1, config2, i, collector); err != nil {
				return summaries, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
		}
		summary := collector.Complete()
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: %d-%d with %d draws", mi+1, len(cfg.Matchups), summary.WinsA, summary.WinsB, summary.Draws)
	}

	writer := metrics.NewWriter(out)
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return summaries, err
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return summaries, err
	}
	log.Info().Msg("stored tournament summaries")

	return summaries, nil
}

// runGame plays game number index of a matchup and records it from config1's
// side. config1 plays black in even games.
func runGame(config1, config2 metrics.AgentConfig, index int, collector metrics.Collector) (engine.Result, error) {
	firstIsBlack := index%2 == 0
	blackConfig, whiteConfig := config1, config2
	if !firstIsBlack {
		blackConfig, whiteConfig = config2, config1
	}
	black := createPlayer(blackConfig, game.Black, index)
	white := createPlayer(whiteConfig, game.White, index)

	var e engine.Runner = engine.LocalEngine(black, white)
	result, err := e.Run()
	if err != nil {
		return result, err
	}

	discs1, discs2 := result.Black, result.White
	if !firstIsBlack {
		discs1, discs2 = discs2, discs1
	}
	collector.AddGame(metrics.GameMetric{
		AgentABlack: firstIsBlack,
		DiscsA:      discs1,
		DiscsB:      discs2,
		Moves:       len(result.Moves),
		Passes:      result.Passes,
		Duration:    result.Duration,
	})
	for _, mv := range result.Moves {
		id := blackConfig.ID
		if mv.Side == game.White {
			id = whiteConfig.ID
		}
		collector.AddMove(metrics.MoveMetric{Agent: id, Duration: mv.Duration, Nodes: mv.Search.Nodes})
	}
	return result, nil
}

// createPlayer builds the CPU for one game. A configured seed is offset by
// the game index so every game of a matchup plays out differently.
func createPlayer(config metrics.AgentConfig, disc game.Disc, index int) player.Player {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed+uint64(index)))
	}

	return player.NewCPU(disc, config.Difficulty, options...)
}
