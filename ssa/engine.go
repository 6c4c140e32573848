// Package ssa implements Gillespie's Direct Method stochastic simulation
// algorithm, driven by an external calcium input signal and a model
// descriptor, and ported from the reference simulator in
// jpahle/CalciumModelsLibrary's simulator.cpp.
package ssa

import (
	"context"
	"fmt"
	"math"

	"camodlib/common"
	"camodlib/config"
	"camodlib/input"
	"camodlib/model"
	"camodlib/rng"
	"camodlib/trajectory"
)

// RunModel looks up modelName in the model registry and runs it. It is the
// convenience entry point the CLI and most callers use.
func RunModel(ctx context.Context, modelName string, sig *input.Signal, schedule config.OutputSchedule, overrides config.ModelOverrides, seed int64) (*trajectory.Trajectory, []string, error) {
	d, ok := model.Get(modelName)
	if !ok {
		return nil, nil, fmt.Errorf("unknown model %q, known models: %v", modelName, model.Names())
	}
	return Run(ctx, d, sig, schedule, overrides, seed)
}

// Run executes the SSA for one model descriptor against one input signal
// and output schedule, returning the trajectory table, any non-fatal
// parameter-merge warnings, and an error for configuration problems or a
// cancelled context. Species invariants are not checked.
func Run(ctx context.Context, d model.Descriptor, sig *input.Signal, schedule config.OutputSchedule, overrides config.ModelOverrides, seed int64) (*trajectory.Trajectory, []string, error) {
	if err := schedule.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid output schedule: %w", err)
	}

	mergedVols, volWarnings := config.MergeParams(map[string]float64{"vol": d.DefaultVolume}, overrides.Vols)
	mergedInitConc, icWarnings := config.MergeParams(d.DefaultInitConc, overrides.InitConc)
	mergedParams, paramWarnings := config.MergeParams(d.DefaultParams, overrides.Params)
	warnings := append(append(volWarnings, icWarnings...), paramWarnings...)

	vol := mergedVols["vol"]
	f := common.AvogadroFactor * vol

	numSpecies := d.NumSpecies()
	numReactions := d.NumReactions()
	x := make([]float64, numSpecies)
	for i, species := range d.Species {
		x[i] = math.Trunc(mergedInitConc[species] * f)
	}

	outputTimes := generateOutputTimes(schedule, sig)
	traj := trajectory.New(append([]string{"time", "Ca"}, d.Species...), len(outputTimes))

	source := rng.New(seed)
	simEnd := sig.EndTime()
	currentTime := sig.StartTime()
	ntimepoint := 0
	outIdx := 0

	concentrations := make([]float64, numSpecies)
	emit := func(t, ca float64) {
		if outIdx >= len(outputTimes) {
			return
		}
		for i := range x {
			concentrations[i] = x[i] / f
		}
		traj.SetRow(outIdx, t, ca, concentrations)
		outIdx++
	}
	// flushUpTo emits every pending output row up to bound, but never the row
	// at simEnd: that boundary row belongs to the termination flush below,
	// which uses the fully-advanced Ca level rather than this pre-increment
	// one.
	flushUpTo := func(bound float64) {
		const tolerance = 1e-4
		for outIdx < len(outputTimes) && outputTimes[outIdx] < bound+tolerance && outputTimes[outIdx] < simEnd-tolerance {
			emit(outputTimes[outIdx], sig.Ca[ntimepoint])
		}
	}

	for currentTime < simEnd {
		if err := ctx.Err(); err != nil {
			return nil, warnings, err
		}
		if ntimepoint+1 >= sig.Len() {
			return nil, warnings, fmt.Errorf("input signal exhausted before reaching end time %v", simEnd)
		}

		ca := sig.Ca[ntimepoint]
		amu := d.CumulativePropensities(mergedParams, x, ca)
		total := amu[numReactions-1]

		if total <= 0 {
			// No reaction can fire: fast-forward the clock to the next
			// input sample without drawing or applying a reaction.
			currentTime = sig.Time[ntimepoint+1]
			flushUpTo(currentTime)
			ntimepoint++
			continue
		}

		u1 := source.Uniform01()
		tau := -math.Log(u1) / total

		if currentTime+tau >= sig.Time[ntimepoint+1] {
			currentTime = sig.Time[ntimepoint+1]
			flushUpTo(currentTime)
			ntimepoint++
			continue
		}

		u2 := source.Uniform01()
		r2 := total * u2
		rIndex := 0
		for amu[rIndex] < r2 {
			rIndex++
		}
		currentTime += tau
		flushUpTo(currentTime)

		// A reaction driving any species negative is a model-construction
		// bug (propensities and stoichiometry disagreeing), not a runtime
		// condition the engine defends against.
		for i := 0; i < numSpecies; i++ {
			x[i] += d.Stoichiometry.At(i, rIndex)
		}
	}

	lastCa := sig.Ca[ntimepoint]
	for outIdx < len(outputTimes) {
		emit(outputTimes[outIdx], lastCa)
	}

	return traj, warnings, nil
}

// generateOutputTimes materializes the full ascending list of times the
// trajectory emitter records, either directly from an explicit schedule or
// by stepping a uniform grid from the input signal's start time.
func generateOutputTimes(s config.OutputSchedule, sig *input.Signal) []float64 {
	if s.IsExplicit() {
		return s.OutputTimes
	}
	const tolerance = 1e-4
	var times []float64
	for t := sig.StartTime(); t <= s.EndTime+tolerance; t += s.Timestep {
		times = append(times, t)
	}
	return times
}
