// Package cli provides the command-line orchestrator for camodlib. It
// interprets the application configuration, loads the input calcium signal,
// drives the SSA engine, and manages optional trajectory persistence.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"camodlib/config"
	"camodlib/input"
	"camodlib/model"
	"camodlib/ssa"
	"camodlib/storage"
)

// Orchestrator manages one simulation run based on an AppConfig.
type Orchestrator struct {
	AppCfg *config.AppConfig
	Logger *storage.SQLiteLogger

	// loadSignalFn allows tests to inject a fixture signal instead of
	// reading a CSV file from disk.
	loadSignalFn func(path string) (*input.Signal, error)
}

// NewOrchestrator creates a new orchestrator with the given application
// configuration. It defaults to reading the input signal from a CSV file on
// disk.
func NewOrchestrator(appCfg *config.AppConfig) *Orchestrator {
	return &Orchestrator{
		AppCfg:       appCfg,
		loadSignalFn: input.LoadSignalCSV,
	}
}

// Run validates the configuration, loads the input signal, executes the SSA
// engine, prints merge warnings, and persists the resulting trajectory. It
// is the orchestrator's single entry point.
func (o *Orchestrator) Run(ctx context.Context) error {
	fmt.Println("camodlib run starting...")
	fmt.Printf("Model: %s, Seed: %d\n", o.AppCfg.Cli.Model, o.AppCfg.Cli.Seed)

	if err := o.AppCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, ok := model.Get(o.AppCfg.Cli.Model); !ok {
		return fmt.Errorf("unknown model %q, known models: %v", o.AppCfg.Cli.Model, model.Names())
	}

	if err := o.initializeLogger(); err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	if o.Logger != nil {
		defer func() {
			if errClose := o.Logger.Close(); errClose != nil {
				log.Printf("error closing SQLite logger: %v", errClose)
			}
		}()
	}

	validatedInputPath, err := o.validatePath(o.AppCfg.Cli.InputPath, true)
	if err != nil {
		return fmt.Errorf("invalid input signal path: %w", err)
	}
	sig, err := o.loadSignalFn(validatedInputPath)
	if err != nil {
		return fmt.Errorf("loading input signal: %w", err)
	}
	fmt.Printf("Loaded input signal: %d samples, [%.3g, %.3g]s\n", sig.Len(), sig.StartTime(), sig.EndTime())

	start := time.Now()
	traj, warnings, err := ssa.RunModel(ctx, o.AppCfg.Cli.Model, sig, o.AppCfg.SimParams, o.AppCfg.Overrides, o.AppCfg.Cli.Seed)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	duration := time.Since(start)
	fmt.Printf("Simulation finished in %s, %d rows emitted.\n", duration, traj.NumRows())

	if o.Logger != nil {
		table := o.outputTable()
		if err := o.Logger.LogTrajectory(table, traj); err != nil {
			return fmt.Errorf("logging trajectory to database: %w", err)
		}
		fmt.Printf("Trajectory logged to table %q in %s\n", table, o.AppCfg.Cli.DbPath)
	}

	if o.AppCfg.Cli.CsvPath != "" {
		validatedCsvPath, err := o.validatePath(o.AppCfg.Cli.CsvPath, false)
		if err != nil {
			return fmt.Errorf("invalid CSV output path: %w", err)
		}
		if err := storage.WriteTrajectoryCSV(traj, validatedCsvPath); err != nil {
			return fmt.Errorf("writing trajectory CSV: %w", err)
		}
		fmt.Printf("Trajectory written to %s\n", validatedCsvPath)
	}

	return nil
}

// initializeLogger opens the SQLite logger if a database path was
// configured.
func (o *Orchestrator) initializeLogger() error {
	if o.AppCfg.Cli.DbPath == "" {
		return nil
	}
	validatedDbPath, err := o.validatePath(o.AppCfg.Cli.DbPath, false)
	if err != nil {
		return fmt.Errorf("invalid DbPath %q: %w", o.AppCfg.Cli.DbPath, err)
	}
	o.AppCfg.Cli.DbPath = validatedDbPath

	logger, err := storage.NewSQLiteLogger(validatedDbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize SQLite logger at %s: %w", validatedDbPath, err)
	}
	o.Logger = logger
	fmt.Printf("SQLite logging enabled: %s\n", validatedDbPath)
	return nil
}

// outputTable derives the table name a run's trajectory is logged under:
// the configured OutputTable override, or the model name itself.
func (o *Orchestrator) outputTable() string {
	if o.AppCfg.Cli.OutputTable != "" {
		return o.AppCfg.Cli.OutputTable
	}
	return o.AppCfg.Cli.Model
}

// validatePath cleans, absolutizes, and performs basic existence checks on a
// file path. forRead requires the file to already exist; writing only
// requires the parent directory to exist.
func (o *Orchestrator) validatePath(rawPath string, forRead bool) (string, error) {
	if rawPath == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	absPath, err := filepath.Abs(filepath.Clean(rawPath))
	if err != nil {
		return "", fmt.Errorf("could not determine absolute path for %q: %w", rawPath, err)
	}

	fileInfo, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			if forRead {
				return "", fmt.Errorf("path %q (resolved to %q) does not exist", rawPath, absPath)
			}
			parentDir := filepath.Dir(absPath)
			if parentInfo, parentErr := os.Stat(parentDir); parentErr != nil || !parentInfo.IsDir() {
				return "", fmt.Errorf("parent directory %q for %q does not exist", parentDir, rawPath)
			}
			return absPath, nil
		}
		return "", fmt.Errorf("could not stat path %q: %w", rawPath, err)
	}

	if forRead && fileInfo.IsDir() {
		return "", fmt.Errorf("path %q (resolved to %q) is a directory, expected a file", rawPath, absPath)
	}
	return absPath, nil
}
