package cmd

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"camodlib/cli"
	"camodlib/config"
	"camodlib/storage"
)

func loadPreset(path string) (config.ModelOverrides, error) {
	return storage.LoadPresetFromJSON(path)
}

var (
	runModel       string
	runInputPath   string
	runPresetPath  string
	runDbPath      string
	runCsvPath     string
	runOutputTable string
	runTimestep    float64
	runEndTime     float64
	runOutputTimes []float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a stochastic simulation for one reaction model.",
	Long: `Run executes Gillespie's Direct Method against the named reaction model,
driven by an input calcium signal CSV, and emits the resulting trajectory to
a uniform or explicit output schedule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		simParams := config.OutputSchedule{Timestep: runTimestep, EndTime: runEndTime}
		if len(runOutputTimes) > 0 {
			simParams = config.OutputSchedule{OutputTimes: runOutputTimes}
		}
		appCfg := &config.AppConfig{
			SimParams: simParams,
			Cli: config.CLIConfig{
				Model:       runModel,
				ConfigFile:  configFile,
				InputPath:   runInputPath,
				PresetPath:  runPresetPath,
				DbPath:      runDbPath,
				CsvPath:     runCsvPath,
				OutputTable: runOutputTable,
				Seed:        seed,
			},
		}

		if configFile != "" {
			if _, err := toml.DecodeFile(configFile, appCfg); err != nil {
				return fmt.Errorf("decoding TOML config %s: %w", configFile, err)
			}
			// Flags explicitly set on the command line take precedence over
			// whatever the TOML file specified.
			if cmd.Flags().Changed("model") {
				appCfg.Cli.Model = runModel
			}
			if cmd.Flags().Changed("seed") {
				appCfg.Cli.Seed = seed
			}
			if cmd.Flags().Changed("input") {
				appCfg.Cli.InputPath = runInputPath
			}
			if cmd.Flags().Changed("outputTimes") {
				appCfg.SimParams = config.OutputSchedule{OutputTimes: runOutputTimes}
			} else {
				if cmd.Flags().Changed("timestep") {
					appCfg.SimParams.Timestep = runTimestep
				}
				if cmd.Flags().Changed("end-time") {
					appCfg.SimParams.EndTime = runEndTime
				}
			}
		}

		if runPresetPath != "" {
			preset, err := loadPreset(runPresetPath)
			if err != nil {
				return fmt.Errorf("loading preset %s: %w", runPresetPath, err)
			}
			appCfg.Overrides = preset
		}

		o := cli.NewOrchestrator(appCfg)
		return o.Run(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runModel, "model", "m", "", "Model name (see 'camodlib models').")
	runCmd.Flags().StringVarP(&runInputPath, "input", "i", "", "Path to the input calcium signal CSV (time,ca columns).")
	runCmd.Flags().StringVar(&runPresetPath, "preset", "", "Path to a JSON parameter/initial-concentration preset.")
	runCmd.Flags().StringVar(&runDbPath, "db", "", "Path to a SQLite database to log the trajectory into.")
	runCmd.Flags().StringVar(&runCsvPath, "csv", "", "Path to write the trajectory as CSV.")
	runCmd.Flags().StringVar(&runOutputTable, "table", "", "Table name to log under (defaults to the model name).")
	runCmd.Flags().Float64Var(&runTimestep, "timestep", 1.0, "Uniform output schedule step size, in seconds.")
	runCmd.Flags().Float64Var(&runEndTime, "end-time", 100.0, "Uniform output schedule end time, in seconds.")
	runCmd.Flags().Float64SliceVar(&runOutputTimes, "outputTimes", nil,
		"Explicit, strictly ascending comma-separated output times, in seconds. Overrides --timestep/--end-time.")
}
