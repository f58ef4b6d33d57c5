package interact

import (
	"context"
	"fmt"
	"strconv"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
	"nautilus/internal/preference"
	"nautilus/internal/prompt"
	"nautilus/internal/validate"
)

const styleLabel = "Preference elicitation style (1 Percentages, 2 Relative ranks, 3 Direct): "

// IterNautilus runs a NAUTILUS session: it asks for the preference style and
// the iteration budget, then elicits one preference per round until the
// budget runs out or the DM answers with a command. It returns the last
// solution, the method's current point when stopped by a command, or nil if
// no round ran.
func (l *Loop) IterNautilus(ctx context.Context, m mcdm.Method) (mcdm.Point, error) {
	st := m.State()
	audit := logging.AuditWithSession(l.sessionID, m.Name())
	audit.SessionStart()

	text, err := l.ask(ctx, prompt.Request{
		Kind:      prompt.KindStyle,
		Label:     styleLabel,
		Default:   strconv.Itoa(int(preference.StylePercentage)),
		Validator: validate.Bounded(1, len(preference.Styles)),
	})
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("style prompt: %w", err)
	}
	style := preference.Style(n)

	l.printBounds(m.Problem())

	ni, err := l.askNumber(ctx, prompt.KindIterations, "Ni: ", st.CurrentIter, st)
	if err != nil {
		return nil, err
	}
	st.UserIters = ni
	st.CurrentIter = ni
	l.log.Info("%s: style=%s iterations=%d", m.Name(), style, ni)

	pref, err := preference.New(style, m, nil)
	if err != nil {
		return nil, err
	}

	var solution mcdm.Point
	for st.CurrentIter != 0 {
		m.PrintCurrentIteration(l.out)

		text, err := l.ask(ctx, prompt.Request{
			Kind:      prompt.KindPreference,
			Label:     style.String() + ": ",
			Default:   pref.Input().String(),
			Validator: validate.NewVectorValidator(m, pref),
			Round:     round(st),
			Remaining: st.CurrentIter,
		})
		if err != nil {
			return nil, err
		}

		in := validate.Parse(text)
		if in.IsCommand() {
			solution = st.Current.Clone()
			audit.Command(round(st), st.CurrentIter, in.Command)
			break
		}
		values, err := in.Floats()
		if err != nil {
			return nil, err
		}
		if pref, err = preference.New(style, m, values); err != nil {
			return nil, err
		}

		timer := logging.StartTimer(logging.CategoryMethod, m.Name()+" iteration")
		step, err := m.NextIteration(pref)
		timer.Stop()
		if err != nil {
			return nil, fmt.Errorf("%s iteration: %w", m.Name(), err)
		}
		solution = step.Solution
		audit.Round(round(st), st.CurrentIter, text, solution.String())
	}

	audit.SessionEnd(round(st), st.CurrentIter, solution.String())
	l.log.Info("%s finished after %d rounds: %v", m.Name(), round(st), solution)
	return solution, nil
}
