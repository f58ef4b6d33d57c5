// Package method implements NAUTILUS and E-NAUTILUS as point searches over
// the pre-generated Pareto set of a problem.
package method

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"

	"nautilus/internal/mcdm"
	"nautilus/internal/problem"
)

// rho is the augmentation coefficient of the achievement scalarizing function.
const rho = 1e-6

// ErrBudgetExhausted is returned by NextIteration once no iterations remain.
var ErrBudgetExhausted = errors.New("iteration budget exhausted")

// asf is the augmented achievement scalarizing function of p with respect to
// the reference point ref and weights w.
func asf(p, ref, w mcdm.Point) float64 {
	terms := make([]float64, len(p))
	for i := range p {
		terms[i] = w[i] * (p[i] - ref[i])
	}
	worst, _ := stats.Max(terms)
	sum, _ := stats.Sum(terms)
	return worst + rho*sum
}

// argminASF returns the index of the point minimizing asf, the first one on
// ties, or -1 for an empty set.
func argminASF(points []mcdm.Point, ref, w mcdm.Point) int {
	best, bestVal := -1, math.Inf(1)
	for i, p := range points {
		if v := asf(p, ref, w); v < bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

// reachable returns the points weakly below bound.
func reachable(points []mcdm.Point, bound mcdm.Point) []mcdm.Point {
	var out []mcdm.Point
	for _, p := range points {
		if p.WeaklyBelow(bound) {
			out = append(out, p)
		}
	}
	return out
}

// lowerBound is the component-wise minimum of points, or fallback when
// there are none.
func lowerBound(points []mcdm.Point, fallback mcdm.Point) mcdm.Point {
	ideal, _, err := problem.Bounds(points)
	if err != nil {
		return fallback.Clone()
	}
	return ideal
}

// step moves a fraction 1/it of the way from prev to q.
func step(prev, q mcdm.Point, it int) mcdm.Point {
	h := float64(it)
	out := make(mcdm.Point, len(prev))
	for i := range prev {
		out[i] = (h-1)/h*prev[i] + q[i]/h
	}
	return out
}

// weights returns the ASF weights a preference asks for. Preferences that
// carry no weights get 1/range per objective.
func weights(pref mcdm.Preference, p *mcdm.Problem) mcdm.Point {
	if w, ok := pref.(mcdm.Weighted); ok {
		return w.Weights()
	}
	ranges := p.Ranges()
	out := make(mcdm.Point, len(ranges))
	for i, r := range ranges {
		out[i] = 1 / r
	}
	return out
}

// distance is how close zh has come to the Pareto set, in percent, measured
// from the nadir point towards q.
func distance(zh, q, nadir mcdm.Point) float64 {
	total := norm(q, nadir)
	if total == 0 {
		return 100
	}
	return 100 * norm(zh, nadir) / total
}

func norm(a, b mcdm.Point) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// spread picks up to k points of a set by farthest-point sampling in the
// objective space normalized by ideal and ranges. The first pick minimizes
// the equally weighted ASF; each further pick maximizes the distance to the
// nearest point already picked. Exact duplicates are never picked twice.
func spread(points []mcdm.Point, k int, p *mcdm.Problem) []mcdm.Point {
	if k <= 0 || len(points) == 0 {
		return nil
	}
	ranges := p.Ranges()
	scaled := make([]mcdm.Point, len(points))
	for i, pt := range points {
		sp := make(mcdm.Point, len(pt))
		for j := range pt {
			sp[j] = (pt[j] - p.Ideal[j]) / ranges[j]
		}
		scaled[i] = sp
	}

	ones := make(mcdm.Point, len(ranges))
	zero := make(mcdm.Point, len(ranges))
	for i := range ones {
		ones[i] = 1
	}
	first := argminASF(scaled, zero, ones)

	picked := []int{first}
	nearest := make([]float64, len(points))
	for i := range scaled {
		nearest[i] = sqDist(scaled[i], scaled[first])
	}
	for len(picked) < k {
		next, far := -1, 0.0
		for i, d := range nearest {
			if d > far {
				next, far = i, d
			}
		}
		if next < 0 {
			break
		}
		picked = append(picked, next)
		for i := range scaled {
			if d := sqDist(scaled[i], scaled[next]); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	out := make([]mcdm.Point, len(picked))
	for i, idx := range picked {
		out[i] = points[idx]
	}
	return out
}

func sqDist(a, b mcdm.Point) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
