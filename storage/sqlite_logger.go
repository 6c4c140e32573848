// Package storage persists a simulation trajectory to SQLite and re-exports
// logged tables to CSV, mirroring the teacher's sqlite_logger.go and
// log_exporter.go.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"camodlib/trajectory"
)

// SQLiteLogger writes a Trajectory's rows to a SQLite database, one table
// row per output sample.
type SQLiteLogger struct {
	db *sql.DB
}

// NewSQLiteLogger opens a fresh SQLite database at dataSourceName, removing
// any existing file there first so that every logging session starts clean.
func NewSQLiteLogger(dataSourceName string) (*SQLiteLogger, error) {
	_ = os.Remove(dataSourceName)

	dbConn, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database at %s: %w", dataSourceName, err)
	}
	if err = dbConn.Ping(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("pinging sqlite database at %s: %w", dataSourceName, err)
	}

	return &SQLiteLogger{db: dbConn}, nil
}

// DBForTest returns the underlying *sql.DB; for use in tests only.
func (sl *SQLiteLogger) DBForTest() *sql.DB {
	return sl.db
}

// sanitizeColumn makes a trajectory column name safe to use unquoted in a
// CREATE TABLE/INSERT statement: species names are simple identifiers
// (letters, digits, underscore) but this guards against anything unexpected
// reaching raw SQL text.
func sanitizeColumn(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// sanitizeTableName validates a user-supplied table name (the model name, or
// the --table CLI override) before it is interpolated into raw SQL. Unlike
// sanitizeColumn it rejects rather than rewrites: a table name is an
// identifier a caller chose deliberately, so silently mangling it would log
// to a different table than the one named on the command line.
func sanitizeTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name must not be empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return fmt.Errorf("table name %q contains character %q, only letters, digits and underscore are allowed", name, r)
		}
	}
	if name[0] >= '0' && name[0] <= '9' {
		return fmt.Errorf("table name %q must not start with a digit", name)
	}
	return nil
}

// LogTrajectory creates the table tableName (if it doesn't already exist)
// and writes every row of traj into it inside one transaction.
func (sl *SQLiteLogger) LogTrajectory(tableName string, traj *trajectory.Trajectory) error {
	if sl.db == nil {
		return fmt.Errorf("sqlite logger not initialized")
	}
	if err := sanitizeTableName(tableName); err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}

	cols := make([]string, len(traj.ColumnNames))
	for i, c := range traj.ColumnNames {
		cols[i] = sanitizeColumn(c)
	}

	colDefs := make([]string, len(cols))
	for i, c := range cols {
		colDefs[i] = fmt.Sprintf("%s REAL", c)
	}
	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (RowID INTEGER PRIMARY KEY AUTOINCREMENT, %s)`,
		tableName, strings.Join(colDefs, ", "))
	if _, err := sl.db.Exec(createSQL); err != nil {
		return fmt.Errorf("creating table %s: %w", tableName, err)
	}

	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		tableName, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	tx, err := sl.db.Begin()
	if err != nil {
		return fmt.Errorf("starting sqlite transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert into %s: %w", tableName, err)
	}
	defer stmt.Close()

	for r := 0; r < traj.NumRows(); r++ {
		row := traj.Row(r)
		args := make([]interface{}, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d into %s: %w", r, tableName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sqlite transaction: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (sl *SQLiteLogger) Close() error {
	if sl.db != nil {
		return sl.db.Close()
	}
	return nil
}
