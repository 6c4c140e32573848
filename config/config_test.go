package config

import "testing"

func TestOutputScheduleValidateUniform(t *testing.T) {
	s := OutputSchedule{Timestep: 0.1, EndTime: 10}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOutputScheduleValidateExplicit(t *testing.T) {
	s := OutputSchedule{OutputTimes: []float64{0, 1, 2}}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOutputScheduleRejectsBothShapes(t *testing.T) {
	s := OutputSchedule{Timestep: 0.1, EndTime: 10, OutputTimes: []float64{0, 1}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error when both schedule shapes are set")
	}
}

func TestOutputScheduleRejectsTimestepBelowMinimum(t *testing.T) {
	s := OutputSchedule{Timestep: 1e-5, EndTime: 10}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for timestep below the minimum")
	}
}

func TestOutputScheduleRejectsNonAscendingTimes(t *testing.T) {
	s := OutputSchedule{OutputTimes: []float64{0, 1, 1}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for non-ascending output_times")
	}
}

func TestAppConfigValidateRequiresModel(t *testing.T) {
	ac := &AppConfig{SimParams: OutputSchedule{Timestep: 1, EndTime: 10}, Cli: CLIConfig{Seed: 1, InputPath: "signal.csv"}}
	if err := ac.Validate(); err == nil {
		t.Fatal("expected error when no model is specified")
	}
}

func TestAppConfigValidateRequiresSeed(t *testing.T) {
	ac := &AppConfig{SimParams: OutputSchedule{Timestep: 1, EndTime: 10}, Cli: CLIConfig{Model: "calmodulin", InputPath: "signal.csv"}}
	if err := ac.Validate(); err == nil {
		t.Fatal("expected error when seed is zero")
	}
}

func TestAppConfigValidateRequiresInputPath(t *testing.T) {
	ac := &AppConfig{SimParams: OutputSchedule{Timestep: 1, EndTime: 10}, Cli: CLIConfig{Model: "calmodulin", Seed: 1}}
	if err := ac.Validate(); err == nil {
		t.Fatal("expected error when no input signal path is specified")
	}
}

func TestMergeParamsOverridesKnownKeys(t *testing.T) {
	defaults := map[string]float64{"k_on": 0.025, "k_off": 0.005}
	merged, warnings := MergeParams(defaults, map[string]float64{"k_on": 1.0})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if merged["k_on"] != 1.0 || merged["k_off"] != 0.005 {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
}

func TestMergeParamsWarnsOnUnknownKey(t *testing.T) {
	defaults := map[string]float64{"k_on": 0.025}
	merged, warnings := MergeParams(defaults, map[string]float64{"k_bogus": 1.0})
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", warnings)
	}
	if _, ok := merged["k_bogus"]; ok {
		t.Fatalf("unknown key should not appear in merged result")
	}
}

func TestMergeParamsDoesNotMutateDefaults(t *testing.T) {
	defaults := map[string]float64{"k_on": 0.025}
	MergeParams(defaults, map[string]float64{"k_on": 99})
	if defaults["k_on"] != 0.025 {
		t.Fatalf("MergeParams must not mutate its defaults argument")
	}
}
