package interact

import (
	"context"
	"fmt"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
	"nautilus/internal/prompt"
)

// IterENautilus runs an E-NAUTILUS session. It asks for the iteration budget
// and the number of candidates per round, primes the first round, then has
// the DM select a candidate each round until the budget runs out or a command
// is given.
//
// When the budget runs out the DM makes one more selection, which only moves
// the method's previous point, and the remaining budget is decremented once
// more. Stopping with a command skips both. The candidates of the last round
// computed after a selection are returned, nil if there was none.
func (l *Loop) IterENautilus(ctx context.Context, m mcdm.Method) ([]mcdm.Candidate, error) {
	st := m.State()
	audit := logging.AuditWithSession(l.sessionID, m.Name())
	audit.SessionStart()

	ni, err := l.askNumber(ctx, prompt.KindENautilusIterations, "Ni: ", st.CurrentIter, st)
	if err != nil {
		return nil, err
	}
	ns := st.Branching
	if ns < 1 {
		ns = DefaultBranching
	}
	if ns, err = l.askNumber(ctx, prompt.KindBranching, "Ns: ", ns, st); err != nil {
		return nil, err
	}
	st.UserIters = ni
	st.CurrentIter = ni
	st.Branching = ns
	l.log.Info("%s: iterations=%d branching=%d", m.Name(), ni, ns)

	l.printBounds(m.Problem())
	if _, err := m.NextIteration(nil); err != nil {
		return nil, fmt.Errorf("%s first iteration: %w", m.Name(), err)
	}

	var candidates []mcdm.Candidate
	for st.CurrentIter != 0 {
		choice, err := l.SelectIter(ctx, m, 1, false)
		if err != nil {
			return nil, err
		}
		if choice.IsCommand() {
			break
		}

		ns, err := l.askNumber(ctx, prompt.KindBranching, "Ns: ", st.Branching, st)
		if err != nil {
			return nil, err
		}
		st.Branching = ns
		step, err := m.NextIteration(choice.Selection)
		if err != nil {
			return nil, fmt.Errorf("%s iteration: %w", m.Name(), err)
		}
		candidates = step.Candidates
		audit.Round(round(st), st.CurrentIter, choice.Selection.Point.String(), st.Prev.String())
	}

	if st.CurrentIter == 0 {
		choice, err := l.SelectIter(ctx, m, 1, false)
		if err != nil {
			return nil, err
		}
		if !choice.IsCommand() {
			st.Prev = choice.Selection.Point.Clone()
		}
		st.CurrentIter--
	}

	audit.SessionEnd(round(st), st.CurrentIter, st.Prev.String())
	l.log.Info("%s finished: prev=%v remaining=%d", m.Name(), st.Prev, st.CurrentIter)
	return candidates, nil
}
