package problem

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"nautilus/internal/mcdm"
)

// ParetoFilter returns the points not dominated by any other point, in input
// order. Exact duplicates are kept once.
// O(n^2) dominance check, fine for sampled point sets.
func ParetoFilter(points []mcdm.Point) []mcdm.Point {
	if len(points) <= 1 {
		return points
	}

	var front []mcdm.Point
	for i := range points {
		dominated := false
		for j := range points {
			if i == j {
				continue
			}
			if points[j].Dominates(points[i]) || (j < i && equal(points[j], points[i])) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, points[i])
		}
	}
	return front
}

func equal(a, b mcdm.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Bounds estimates the ideal and nadir points of a Pareto set as the
// per-objective minimum and maximum.
func Bounds(points []mcdm.Point) (ideal, nadir mcdm.Point, err error) {
	if len(points) == 0 {
		return nil, nil, fmt.Errorf("cannot estimate bounds of an empty point set")
	}
	n := len(points[0])
	ideal = make(mcdm.Point, n)
	nadir = make(mcdm.Point, n)
	column := make([]float64, len(points))
	for i := 0; i < n; i++ {
		for j, p := range points {
			if len(p) != n {
				return nil, nil, fmt.Errorf("point %d has %d objectives, expected %d", j, len(p), n)
			}
			column[j] = p[i]
		}
		if ideal[i], err = stats.Min(column); err != nil {
			return nil, nil, fmt.Errorf("objective %d: %w", i+1, err)
		}
		if nadir[i], err = stats.Max(column); err != nil {
			return nil, nil, fmt.Errorf("objective %d: %w", i+1, err)
		}
	}
	return ideal, nadir, nil
}
