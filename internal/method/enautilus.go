package method

import (
	"fmt"
	"io"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
)

// ENautilus is E-NAUTILUS. Each round it offers Branching candidate points
// spread over the reachable Pareto set; the DM picks one and the next round
// starts from it.
type ENautilus struct {
	problem *mcdm.Problem
	state   mcdm.State
	reach   []mcdm.Point
}

// NewENautilus returns an E-NAUTILUS method starting at the nadir point with
// every Pareto point reachable.
func NewENautilus(p *mcdm.Problem, iterations, branching int) *ENautilus {
	logging.Method("E-NAUTILUS on %s: %d points, %d iterations, %d candidates", p.Name, len(p.Points), iterations, branching)
	return &ENautilus{
		problem: p,
		state: mcdm.State{
			CurrentIter: iterations,
			UserIters:   iterations,
			Branching:   branching,
			Current:     p.Nadir.Clone(),
			Prev:        p.Nadir.Clone(),
		},
		reach: p.Points,
	}
}

// StartFrom restarts the search from prev with the given reachable points,
// used to continue where another method stopped.
func (e *ENautilus) StartFrom(prev mcdm.Point, reach []mcdm.Point) {
	e.state.Prev = prev.Clone()
	e.state.Current = prev.Clone()
	e.reach = reach
	e.state.Candidates = nil
}

func (e *ENautilus) Name() string { return "E-NAUTILUS" }

func (e *ENautilus) Problem() *mcdm.Problem { return e.problem }

func (e *ENautilus) State() *mcdm.State { return &e.state }

// NextIteration computes the next candidate set. A nil preference primes the
// first round from the current point; a mcdm.Selection moves to the selected
// candidate first.
func (e *ENautilus) NextIteration(pref mcdm.Preference) (mcdm.Step, error) {
	prev, reachSet := e.state.Prev, e.reach
	switch sel := pref.(type) {
	case nil:
	case mcdm.Selection:
		if len(sel.Point) != e.problem.NumObjectives() {
			return mcdm.Step{}, fmt.Errorf("selection has %d objectives, problem has %d", len(sel.Point), e.problem.NumObjectives())
		}
		prev = sel.Point.Clone()
		reachSet = reachable(e.reach, sel.Point)
	default:
		return mcdm.Step{}, fmt.Errorf("%s accepts only candidate selections, got %T", e.Name(), pref)
	}

	// State is only committed once the round can run.
	it := e.state.CurrentIter
	if it <= 0 {
		return mcdm.Step{}, ErrBudgetExhausted
	}
	if len(reachSet) == 0 {
		return mcdm.Step{}, fmt.Errorf("no Pareto points reachable from %v", prev)
	}
	e.state.Prev = prev
	e.reach = reachSet

	ns := e.state.Branching
	if ns < 1 {
		ns = 1
	}
	reps := spread(e.reach, ns, e.problem)
	candidates := make([]mcdm.Candidate, len(reps))
	for i, q := range reps {
		z := step(e.state.Prev, q, it)
		reach := reachable(e.reach, z)
		candidates[i] = mcdm.Candidate{
			Point: z,
			Lower: lowerBound(reach, q),
			Reach: reach,
		}
	}

	e.state.Current = e.state.Prev.Clone()
	e.state.Candidates = candidates
	e.state.CurrentIter--

	logging.MethodDebug("E-NAUTILUS step %d: prev=%v reach=%d candidates=%d",
		e.state.UserIters-e.state.CurrentIter, e.state.Prev, len(e.reach), len(candidates))

	return mcdm.Step{
		Solution:   e.state.Prev.Clone(),
		Lower:      lowerBound(e.reach, e.state.Prev),
		Candidates: candidates,
	}, nil
}

// PrintCurrentIteration writes the candidate table of the current round.
func (e *ENautilus) PrintCurrentIteration(w io.Writer) {
	done := e.state.UserIters - e.state.CurrentIter
	fmt.Fprintf(w, "Iteration %d/%d\n", done, e.state.UserIters)
	fmt.Fprintln(w, candidateTable(e.problem, e.state.Candidates))
}
