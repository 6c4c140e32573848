package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"camodlib/cli"
	"camodlib/config"
)

// captureOutput executes action and returns what it wrote to stdout.
func captureOutput(t *testing.T, action func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	actionErr := action()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), actionErr
}

func writeSignalCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signal.csv")
	if err := os.WriteFile(path, []byte("time,ca\n0,50\n5,50\n10,50\n"), 0644); err != nil {
		t.Fatalf("writing fixture signal: %v", err)
	}
	return path
}

func TestOrchestratorRunProducesTrajectoryCSV(t *testing.T) {
	inputPath := writeSignalCSV(t)
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	appCfg := &config.AppConfig{
		SimParams: config.OutputSchedule{Timestep: 1, EndTime: 10},
		Cli: config.CLIConfig{
			Model:     "calmodulin",
			Seed:      7,
			InputPath: inputPath,
			CsvPath:   csvPath,
		},
	}

	o := cli.NewOrchestrator(appCfg)
	output, err := captureOutput(t, func() error { return o.Run(context.Background()) })
	if err != nil {
		t.Fatalf("Run failed: %v\noutput:\n%s", err, output)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("reading output CSV: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty output CSV")
	}
}

func TestOrchestratorRunRejectsUnknownModel(t *testing.T) {
	inputPath := writeSignalCSV(t)
	appCfg := &config.AppConfig{
		SimParams: config.OutputSchedule{Timestep: 1, EndTime: 10},
		Cli:       config.CLIConfig{Model: "not-a-model", Seed: 1, InputPath: inputPath},
	}
	o := cli.NewOrchestrator(appCfg)
	if _, err := captureOutput(t, func() error { return o.Run(context.Background()) }); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestOrchestratorRunRejectsInvalidConfig(t *testing.T) {
	appCfg := &config.AppConfig{
		SimParams: config.OutputSchedule{Timestep: 1, EndTime: 10},
		Cli:       config.CLIConfig{Seed: 1},
	}
	o := cli.NewOrchestrator(appCfg)
	if _, err := captureOutput(t, func() error { return o.Run(context.Background()) }); err == nil {
		t.Fatal("expected error when no model is specified")
	}
}

func TestOrchestratorRunLogsToSQLite(t *testing.T) {
	inputPath := writeSignalCSV(t)
	dbPath := filepath.Join(t.TempDir(), "out.db")

	appCfg := &config.AppConfig{
		SimParams: config.OutputSchedule{Timestep: 1, EndTime: 10},
		Cli: config.CLIConfig{
			Model:     "calmodulin",
			Seed:      3,
			InputPath: inputPath,
			DbPath:    dbPath,
		},
	}
	o := cli.NewOrchestrator(appCfg)
	if _, err := captureOutput(t, func() error { return o.Run(context.Background()) }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file to be created: %v", err)
	}
}
