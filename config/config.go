// Package config defines the simulation run configuration: the output
// schedule, the per-model parameter/initial-concentration/volume overrides,
// and the CLI-facing settings that drive the companion command-line program.
// It also implements the parameter-merge-with-warnings semantics shared by
// every reaction model.
package config

import (
	"fmt"
	"sort"
)

// minTimestep is the smallest uniform-grid step the output schedule allows;
// below it, accumulated floating-point drift against the input signal's
// sample times would exceed the engine's matching tolerance.
const minTimestep = 5e-5

// OutputSchedule describes when the trajectory emitter records a sample.
// Exactly one of the two shapes must be used: a uniform grid defined by
// Timestep and EndTime, or an explicit ascending list of OutputTimes.
type OutputSchedule struct {
	Timestep    float64   `toml:"timestep"`
	EndTime     float64   `toml:"end_time"`
	OutputTimes []float64 `toml:"output_times"`
}

// IsExplicit reports whether the schedule was given as an explicit list of
// output times rather than a uniform timestep/end-time grid.
func (s OutputSchedule) IsExplicit() bool {
	return len(s.OutputTimes) > 0
}

// Validate checks that exactly one schedule shape is populated and that its
// values are well-formed.
func (s OutputSchedule) Validate() error {
	if s.IsExplicit() {
		if s.Timestep != 0 || s.EndTime != 0 {
			return fmt.Errorf("output schedule must not set both output_times and timestep/end_time")
		}
		for i := 1; i < len(s.OutputTimes); i++ {
			if s.OutputTimes[i] <= s.OutputTimes[i-1] {
				return fmt.Errorf("output_times must be strictly ascending: [%d]=%v <= [%d]=%v",
					i, s.OutputTimes[i], i-1, s.OutputTimes[i-1])
			}
		}
		return nil
	}
	if s.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %v", s.Timestep)
	}
	if s.Timestep < minTimestep {
		return fmt.Errorf("timestep %v is below the minimum %v: drift against the input signal would exceed tolerance", s.Timestep, minTimestep)
	}
	if s.EndTime <= 0 {
		return fmt.Errorf("end_time must be positive, got %v", s.EndTime)
	}
	return nil
}

// ModelOverrides holds the optional user-supplied dictionaries that are
// merged on top of a model's defaults: volumes, initial concentrations and
// reaction parameters. Any subset may be nil or partially populated.
type ModelOverrides struct {
	Vols     map[string]float64 `toml:"vols"`
	InitConc map[string]float64 `toml:"init_conc"`
	Params   map[string]float64 `toml:"params"`
}

// CLIConfig holds the settings that drive the companion command-line
// program: which model to run, where to read a TOML preset from, and where
// to persist the resulting trajectory.
type CLIConfig struct {
	Model       string `toml:"model"`
	ConfigFile  string `toml:"-"`
	InputPath   string `toml:"-"`
	PresetPath  string `toml:"-"`
	DbPath      string `toml:"-"`
	CsvPath     string `toml:"-"`
	OutputTable string `toml:"-"`
	Seed        int64  `toml:"seed"`
}

// AppConfig is the top-level configuration for one simulation run.
type AppConfig struct {
	SimParams OutputSchedule
	Overrides ModelOverrides
	Cli       CLIConfig
}

// Validate checks the AppConfig for internal consistency. It does not know
// about the model registry (to avoid an import cycle); the caller is
// responsible for checking that Cli.Model names a registered model.
func (ac *AppConfig) Validate() error {
	if ac.Cli.Model == "" {
		return fmt.Errorf("a model name must be specified")
	}
	if ac.Cli.InputPath == "" {
		return fmt.Errorf("an input calcium signal CSV path must be specified")
	}
	if err := ac.SimParams.Validate(); err != nil {
		return fmt.Errorf("invalid output schedule: %w", err)
	}
	if ac.Cli.Seed == 0 {
		return fmt.Errorf("seed must be non-zero for a reproducible run")
	}
	return nil
}

// MergeParams merges a user-supplied override map on top of a copy of the
// defaults. Keys in overrides that do not exist in defaults are discarded
// and reported as warnings rather than causing an error, matching the
// original model wrappers' "no such index" behavior.
func MergeParams(defaults, overrides map[string]float64) (map[string]float64, []string) {
	merged := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	var warnings []string
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := defaults[k]; !ok {
			warnings = append(warnings, fmt.Sprintf("no such parameter %q, default value has been used", k))
			continue
		}
		merged[k] = overrides[k]
	}
	return merged, warnings
}
