package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Summary is the aggregate result of a run.
type Summary struct {
	RunID     string    `yaml:"run-id"`
	PlayerX   string    `yaml:"player-x"`
	PlayerO   string    `yaml:"player-o"`
	Games     int       `yaml:"games"`
	XWins     int       `yaml:"x-wins"`
	OWins     int       `yaml:"o-wins"`
	Draws     int       `yaml:"draws"`
	StartTime time.Time `yaml:"start-time"`
	EndTime   time.Time `yaml:"end-time"`
}

type Writer struct {
	runID   string
	baseDir string
}

// NewRunID returns a fresh identifier for a run's records.
func NewRunID() string {
	return uuid.NewString()
}

// NewWriter creates <outputDir>/<runID> to hold the records of one run.
func NewWriter(outputDir, runID string) (*Writer, error) {
	if runID == "" {
		runID = NewRunID()
	}
	baseDir := filepath.Join(outputDir, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSummary(summary Summary) error {
	summary.RunID = w.runID
	return w.writeYAML("summary.yaml", summary)
}

// WriteSummaries stores one summary per match up of an experiment.
func (w *Writer) WriteSummaries(summaries []Summary) error {
	return w.writeYAML("summaries.yaml", summaries)
}

func (w *Writer) writeYAML(name string, v any) (err error) {
	f, err := w.create(name)
	if err != nil {
		return err
	}
	defer closeFile(f, name, &err)

	encoder := yaml.NewEncoder(f)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}

	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "rounds"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Rounds),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	header := []string{"round", "player_x", "player_o", "outcome", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Round),
			record.PlayerX,
			record.PlayerO,
			record.Outcome,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveMetric) error {
	header := []string{"round", "step", "side", "agent", "cell", "duration", "episodes", "full_playouts", "nodes"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Step),
			record.Side,
			record.Agent,
			record.Cell,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Nodes),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	f, err := w.create(name)
	if err != nil {
		return err
	}
	defer closeFile(f, name, &err)

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}

func (w *Writer) create(name string) (*os.File, error) {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	return f, nil
}

// closeFile closes f and reports its error through err unless an earlier
// error is already set.
func closeFile(f *os.File, name string, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close %s: %w", name, cerr)
	}
}
