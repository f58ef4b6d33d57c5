// Package mcdm defines the contracts shared by interactive multiobjective
// methods, the preference encodings that drive them, and the control loop.
//
// All objectives are minimized. A Point is a vector in objective space whose
// length equals the number of objectives of the Problem it belongs to.
package mcdm

import (
	"strconv"
	"strings"
)

// Point is a vector in objective space.
type Point []float64

// Clone returns a copy of p. A nil point stays nil.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// String renders the point as comma separated values, the same form the
// vector prompts accept.
func (p Point) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// WeaklyBelow reports whether p is less than or equal to q in every objective.
func (p Point) WeaklyBelow(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] > q[i] {
			return false
		}
	}
	return true
}

// Dominates reports whether p Pareto-dominates q: no worse in every objective
// and strictly better in at least one.
func (p Point) Dominates(q Point) bool {
	if !p.WeaklyBelow(q) {
		return false
	}
	for i := range p {
		if p[i] < q[i] {
			return true
		}
	}
	return false
}

// Problem is the objective space a method searches.
type Problem struct {
	Name       string
	Objectives []string

	// Nadir holds the worst value of each objective over the Pareto set,
	// Ideal the best.
	Nadir Point
	Ideal Point

	// Points is the pre-generated Pareto set searched by point-search methods.
	Points []Point
}

// NumObjectives returns the dimension of the objective space.
func (p *Problem) NumObjectives() int {
	return len(p.Nadir)
}

// Ranges returns nadir minus ideal per objective. Degenerate objectives get
// a range of 1 so callers can divide by it.
func (p *Problem) Ranges() Point {
	out := make(Point, len(p.Nadir))
	for i := range p.Nadir {
		r := p.Nadir[i] - p.Ideal[i]
		if r <= 0 {
			r = 1
		}
		out[i] = r
	}
	return out
}

// ObjectiveName returns the display name of objective i.
func (p *Problem) ObjectiveName(i int) string {
	if i < len(p.Objectives) && p.Objectives[i] != "" {
		return p.Objectives[i]
	}
	return "f" + strconv.Itoa(i+1)
}

// Candidate is one reachable iteration point offered to the DM together with
// its lower bound and the part of the Pareto set still reachable from it.
type Candidate struct {
	Point Point
	Lower Point
	Reach []Point
}

// State is the iteration state of a method. The control loop reads and
// writes it between rounds; the method updates it inside NextIteration.
type State struct {
	// CurrentIter is the remaining iteration budget.
	CurrentIter int
	// UserIters is the budget as the DM chose it.
	UserIters int
	// Branching is the number of candidates generated per round (Ns).
	Branching int

	Current Point
	Prev    Point

	Candidates []Candidate
}

// Step is what one NextIteration call produced.
type Step struct {
	Solution   Point
	Lower      Point
	Candidates []Candidate
	// Distance is the closeness of Solution to the Pareto set, in percent.
	Distance float64
}
