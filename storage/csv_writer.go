package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"camodlib/trajectory"
)

// WriteTrajectoryCSV writes a trajectory table directly to a CSV file at
// path, bypassing SQLite, for quick inspection of a single run.
func WriteTrajectoryCSV(traj *trajectory.Trajectory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(traj.ColumnNames); err != nil {
		return fmt.Errorf("writing CSV header to %s: %w", path, err)
	}

	record := make([]string, traj.NumCols())
	for r := 0; r < traj.NumRows(); r++ {
		row := traj.Row(r)
		for i, v := range row {
			record[i] = fmt.Sprintf("%g", v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d to %s: %w", r, path, err)
		}
	}
	return writer.Error()
}
