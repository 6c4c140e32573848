// Package input represents the externally supplied calcium time series that
// drives a simulation run.
package input

import "fmt"

// Signal is a step-function calcium trace: Ca[k] is held constant on
// [Time[k], Time[k+1]), and Ca[len-1] holds from Time[len-1] through the end
// of the run. Time must be strictly ascending and both slices the same
// length.
type Signal struct {
	Time []float64
	Ca   []float64
}

// New validates and builds a Signal from parallel time/calcium slices.
func New(time, ca []float64) (*Signal, error) {
	if len(time) < 2 {
		return nil, fmt.Errorf("input signal needs at least 2 samples, got %d", len(time))
	}
	if len(time) != len(ca) {
		return nil, fmt.Errorf("input signal time (%d) and Ca (%d) lengths differ", len(time), len(ca))
	}
	for i := 1; i < len(time); i++ {
		if time[i] <= time[i-1] {
			return nil, fmt.Errorf("input signal time must be strictly ascending: time[%d]=%v <= time[%d]=%v",
				i, time[i], i-1, time[i-1])
		}
	}
	return &Signal{Time: time, Ca: ca}, nil
}

// StartTime is the first sample's time, the simulation's start time.
func (s *Signal) StartTime() float64 { return s.Time[0] }

// EndTime is the last sample's time, the simulation's end time.
func (s *Signal) EndTime() float64 { return s.Time[len(s.Time)-1] }

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.Time) }
