package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores a run's records under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// BaseDir returns the directory this writer stores files in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteGames stores one row per episode in games.csv.
func (w *Writer) WriteGames(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"episode", "x_player", "result", "plies"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Episode),
			record.XPlayer,
			record.Result,
			strconv.Itoa(record.Plies),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record: %w", err)
		}
	}
	return writer.Error()
}

// WriteSummary stores the run aggregates in summary.csv.
func (w *Writer) WriteSummary(summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"episodes", "win_rate_1", "win_rate_2", "draw_rate",
		"mean_plies", "stdev_plies", "min_plies", "max_plies",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	float := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	row := []string{
		strconv.Itoa(summary.Episodes),
		float(summary.WinRate1),
		float(summary.WinRate2),
		float(summary.DrawRate),
		float(summary.MeanPlies),
		float(summary.StdevPlies),
		float(summary.MinPlies),
		float(summary.MaxPlies),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write summary row: %w", err)
	}
	return writer.Error()
}
