package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"othello/searcher"
	"strconv"
	"time"
)

// AgentConfig describes a CPU agent taking part in an experiment.
type AgentConfig struct {
	ID         int                 `yaml:"id"`
	Difficulty searcher.Difficulty `yaml:"difficulty"`
	Goroutines int                 `yaml:"goroutines"`
	Depth      int                 `yaml:"depth"`
	Seed       uint64              `yaml:"seed"`
}

// ThroughputRecord is the search speed of one goroutine setting.
type ThroughputRecord struct {
	Goroutines     int
	Searches       int
	MeanDuration   time.Duration
	StdDevDuration time.Duration
	NodesPerSecond float64
}

type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "difficulty", "goroutines", "depth", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Difficulty.String(),
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"agent_a", "agent_b", "games", "wins_a", "wins_b", "draws",
		"mean_margin", "stddev_margin", "mean_move_time_a", "mean_move_time_b", "nodes_a", "nodes_b"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.AgentA),
			strconv.Itoa(s.AgentB),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.WinsA),
			strconv.Itoa(s.WinsB),
			strconv.Itoa(s.Draws),
			strconv.FormatFloat(s.MeanMargin, 'f', 2, 64),
			strconv.FormatFloat(s.StdDevMargin, 'f', 2, 64),
			s.MeanMoveTimeA.String(),
			s.MeanMoveTimeB.String(),
			strconv.FormatFloat(s.TotalNodesA, 'f', 0, 64),
			strconv.FormatFloat(s.TotalNodesB, 'f', 0, 64),
		})
	}
	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	return nil
}

func (w *Writer) WriteThroughput(records []ThroughputRecord) error {
	header := []string{"goroutines", "searches", "mean_duration", "stddev_duration", "nodes_per_second"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Goroutines),
			strconv.Itoa(r.Searches),
			r.MeanDuration.String(),
			r.StdDevDuration.String(),
			strconv.FormatFloat(r.NodesPerSecond, 'f', 0, 64),
		})
	}
	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write throughput records: %w", err)
	}
	return nil
}

func (w *Writer) write(header []string, rows [][]string) error {
	writer := csv.NewWriter(w.out)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
