package storage

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// ExportLogData connects to the SQLite database at dbPath, reads every row
// of tableName, and writes it as CSV to outputPath. If outputPath is empty,
// output goes to os.Stdout. Only "csv" format is currently supported.
func ExportLogData(dbPath, tableName, format, outputPath string) error {
	if format != "csv" {
		return fmt.Errorf("unsupported format '%s', only 'csv' is currently supported", format)
	}

	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open SQLite database at %s: %w", dbPath, err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping SQLite database at %s: %w", dbPath, err)
	}

	var writer *csv.Writer
	var file *os.File
	var out io.Writer

	if outputPath != "" {
		file, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		defer file.Close()
		out = file
	} else {
		out = os.Stdout
	}
	writer = csv.NewWriter(out)
	defer writer.Flush()

	return exportTrajectoryTable(db, tableName, writer)
}

// exportTrajectoryTable exports an arbitrary trajectory table to CSV. Unlike
// a fixed schema, each model logs a different set of species columns, so
// the column list is discovered from the query result rather than
// hardcoded.
func exportTrajectoryTable(db *sql.DB, tableName string, writer *csv.Writer) error {
	if err := sanitizeTableName(tableName); err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s ORDER BY RowID", tableName))
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns for %s: %w", tableName, err)
	}
	if err := writer.Write(cols); err != nil {
		return fmt.Errorf("failed to write CSV headers for %s: %w", tableName, err)
	}

	vals := make([]sql.NullFloat64, len(cols))
	scanArgs := make([]interface{}, len(cols))
	for i := range vals {
		scanArgs[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return fmt.Errorf("failed to scan row from %s: %w", tableName, err)
		}
		record := make([]string, len(cols))
		for i, v := range vals {
			record[i] = floatToString(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", tableName, err)
		}
	}
	return rows.Err()
}

func floatToString(nf sql.NullFloat64) string {
	if nf.Valid {
		return strconv.FormatFloat(nf.Float64, 'g', -1, 64)
	}
	return ""
}
