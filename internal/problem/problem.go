// Package problem builds the objective spaces the methods search: built-in
// test problems sampled on a decision-space grid and point sets read from
// YAML files.
package problem

import (
	"fmt"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
)

// RiverPollutionName is the built-in name of RiverPollution.
const RiverPollutionName = "river-pollution"

// RiverPollution returns the four-objective river pollution problem of
// Narula and Weistroffer. Both decision variables range over [0.3, 1.0] and
// are sampled with samples points each; the Pareto-optimal images form the
// point set. All four objectives are minimized.
func RiverPollution(samples int) (*mcdm.Problem, error) {
	if samples < 2 {
		return nil, fmt.Errorf("river pollution needs at least 2 samples per variable, got %d", samples)
	}
	timer := logging.StartTimer(logging.CategoryProblem, "river pollution sampling")
	defer timer.Stop()

	xs := linspace(0.3, 1.0, samples)
	points := make([]mcdm.Point, 0, samples*samples)
	for _, x1 := range xs {
		for _, x2 := range xs {
			points = append(points, riverPollution(x1, x2))
		}
	}

	front := ParetoFilter(points)
	ideal, nadir, err := Bounds(front)
	if err != nil {
		return nil, err
	}
	logging.Problem("river pollution: %d samples, %d Pareto points", len(points), len(front))

	return &mcdm.Problem{
		Name:       "River pollution",
		Objectives: []string{"Water quality (fish)", "Water quality (city)", "ROI", "Tax increase"},
		Ideal:      ideal,
		Nadir:      nadir,
		Points:     front,
	}, nil
}

func riverPollution(x1, x2 float64) mcdm.Point {
	return mcdm.Point{
		-4.07 - 2.27*x1,
		-2.60 - 0.03*x1 - 0.02*x2 - 0.01/(1.39-x1*x1) - 0.30/(1.39-x2*x2),
		-8.21 + 0.71/(1.09-x1*x1),
		-0.96 + 0.96/(1.09-x2*x2),
	}
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Builtin returns the built-in problem registered under name.
func Builtin(name string, samples int) (*mcdm.Problem, error) {
	switch name {
	case RiverPollutionName, "":
		return RiverPollution(samples)
	default:
		return nil, fmt.Errorf("unknown built-in problem %q", name)
	}
}
