package method

import (
	"fmt"
	"io"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
)

// Nautilus is NAUTILUS v1. It starts at the nadir point and, with each
// preference, moves a step closer to the Pareto set without ever making an
// objective worse than the current iteration point.
type Nautilus struct {
	problem *mcdm.Problem
	state   mcdm.State

	reach    []mcdm.Point
	lower    mcdm.Point
	distance float64
}

// NewNautilus returns a NAUTILUS method with the given iteration budget.
func NewNautilus(p *mcdm.Problem, iterations int) *Nautilus {
	logging.Method("NAUTILUS on %s: %d points, %d iterations", p.Name, len(p.Points), iterations)
	return &Nautilus{
		problem: p,
		state: mcdm.State{
			CurrentIter: iterations,
			UserIters:   iterations,
			Current:     p.Nadir.Clone(),
			Prev:        p.Nadir.Clone(),
		},
		reach: p.Points,
		lower: p.Ideal.Clone(),
	}
}

func (n *Nautilus) Name() string { return "NAUTILUS" }

func (n *Nautilus) Problem() *mcdm.Problem { return n.problem }

func (n *Nautilus) State() *mcdm.State { return &n.state }

// Reachable returns the Pareto points still reachable from the current
// iteration point.
func (n *Nautilus) Reachable() []mcdm.Point { return n.reach }

// NextIteration projects the preference onto the reachable Pareto points and
// takes one step towards the projection. A nil preference weighs objectives
// by their ranges.
func (n *Nautilus) NextIteration(pref mcdm.Preference) (mcdm.Step, error) {
	it := n.state.CurrentIter
	if it <= 0 {
		return mcdm.Step{}, ErrBudgetExhausted
	}

	w := weights(pref, n.problem)
	idx := argminASF(n.reach, n.problem.Ideal, w)
	if idx < 0 {
		return mcdm.Step{}, fmt.Errorf("no Pareto points reachable from %v", n.state.Current)
	}
	q := n.reach[idx]

	zh := step(n.state.Current, q, it)
	n.state.Prev = n.state.Current
	n.state.Current = zh
	n.reach = reachable(n.reach, zh)
	n.lower = lowerBound(n.reach, q)
	n.distance = distance(zh, q, n.problem.Nadir)
	n.state.CurrentIter--

	logging.MethodDebug("NAUTILUS step %d: weights=%v q=%v zh=%v reach=%d distance=%.2f",
		n.state.UserIters-n.state.CurrentIter, w, q, zh, len(n.reach), n.distance)

	return mcdm.Step{
		Solution: zh.Clone(),
		Lower:    n.lower.Clone(),
		Distance: n.distance,
	}, nil
}

// PrintCurrentIteration writes the iteration number, closeness to the
// Pareto set, and a table of the current point with its bounds.
func (n *Nautilus) PrintCurrentIteration(w io.Writer) {
	done := n.state.UserIters - n.state.CurrentIter
	fmt.Fprintf(w, "Iteration %d/%d, distance to Pareto set %.1f%%\n", done, n.state.UserIters, n.distance)
	fmt.Fprintln(w, boundsTable(n.problem, n.lower, n.state.Current))
	fmt.Fprintf(w, "%d Pareto optimal solutions reachable\n", len(n.reach))
}
