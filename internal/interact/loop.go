// Package interact drives interactive methods round by round: it asks the
// decision maker for preferences or candidate selections through a
// prompt.Prompter and feeds the answers to a mcdm.Method.
//
// The loop is synchronous. Quitting is reported as validate.ErrQuit and left
// to the host.
package interact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
	"nautilus/internal/preference"
	"nautilus/internal/prompt"
	"nautilus/internal/validate"
)

// DefaultBranching is the Ns suggested when a method has none set.
const DefaultBranching = 5

// Loop asks questions through a Prompter and writes iteration views to out.
type Loop struct {
	prompter  prompt.Prompter
	out       io.Writer
	sessionID string
	log       *logging.Logger

	lastRanking mcdm.Point
}

// New returns a loop with a fresh session id.
func New(p prompt.Prompter, out io.Writer) *Loop {
	if out == nil {
		out = io.Discard
	}
	id := uuid.NewString()
	return &Loop{
		prompter:  p,
		out:       out,
		sessionID: id,
		log:       logging.Get(logging.CategorySession).With("session", id),
	}
}

// SessionID identifies the loop in logs and the audit trail.
func (l *Loop) SessionID() string { return l.sessionID }

// LastRanking returns the ranking of the last round AskPref ran, nil before
// the first one.
func (l *Loop) LastRanking() mcdm.Point { return l.lastRanking.Clone() }

// Choice is the answer to a candidate selection: either a command token or
// the selected candidate.
type Choice struct {
	Command   string
	Selection mcdm.Selection
}

// IsCommand reports whether the DM answered with a command token.
func (c Choice) IsCommand() bool { return c.Command != "" }

func (l *Loop) ask(ctx context.Context, req prompt.Request) (string, error) {
	text, err := l.prompter.Ask(ctx, req)
	if err != nil {
		if errors.Is(err, validate.ErrQuit) {
			l.log.Info("quit at %s prompt", req.Kind)
			return "", err
		}
		return "", fmt.Errorf("%s prompt: %w", req.Kind, err)
	}
	logging.PromptDebug("%s answered %q", req.Kind, text)
	return strings.TrimSpace(text), nil
}

func round(st *mcdm.State) int { return st.UserIters - st.CurrentIter }

func (l *Loop) printBounds(p *mcdm.Problem) {
	fmt.Fprintf(l.out, "Nadir: %s\n", p.Nadir)
	fmt.Fprintf(l.out, "Ideal: %s\n", p.Ideal)
}

func (l *Loop) askNumber(ctx context.Context, kind prompt.Kind, label string, def int, st *mcdm.State) (int, error) {
	if def < 1 {
		def = 1
	}
	text, err := l.ask(ctx, prompt.Request{
		Kind:      kind,
		Label:     label,
		Default:   strconv.Itoa(def),
		Validator: validate.NewNumberValidator(),
		Round:     round(st),
		Remaining: st.CurrentIter,
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s prompt: %w", kind, err)
	}
	return n, nil
}

// SelectIter asks the DM to pick one of the method's current candidates by
// its 1-based index. def is the suggested index. The candidate table is
// printed first unless noPrint is set.
func (l *Loop) SelectIter(ctx context.Context, m mcdm.Method, def int, noPrint bool) (Choice, error) {
	if !noPrint {
		m.PrintCurrentIteration(l.out)
	}
	st := m.State()
	text, err := l.ask(ctx, prompt.Request{
		Kind:      prompt.KindSelection,
		Label:     "Select iteration point: ",
		Default:   strconv.Itoa(def),
		Validator: validate.NewIterValidator(m),
		Round:     round(st),
		Remaining: st.CurrentIter,
	})
	if err != nil {
		return Choice{}, err
	}

	audit := logging.AuditWithSession(l.sessionID, m.Name())
	in := validate.Parse(text)
	if in.IsQuit() {
		return Choice{}, validate.ErrQuit
	}
	if in.IsCommand() {
		audit.Command(round(st), st.CurrentIter, in.Command)
		return Choice{Command: in.Command}, nil
	}

	idx, err := strconv.Atoi(text)
	if err != nil {
		return Choice{}, fmt.Errorf("selection %q: %w", text, err)
	}
	c := st.Candidates[idx-1]
	fmt.Fprintf(l.out, "Selected iteration point: %s\n", c.Point)
	fmt.Fprintf(l.out, "Reachable Pareto optimal solutions: %d\n", len(c.Reach))
	audit.Selection(round(st), st.CurrentIter, text, c.Point.String())

	return Choice{Selection: mcdm.Selection{Point: c.Point.Clone(), Lower: c.Lower.Clone()}}, nil
}

// AskPref runs a single ranking round. prev is offered as the default; nil
// offers equal ranks. The exit token is returned as is without touching the
// method, and so is a command token. Otherwise the answer is turned into a
// RelativeRanking, the method advances once, the new iteration is printed,
// and the empty string is returned.
func (l *Loop) AskPref(ctx context.Context, m mcdm.Method, prev mcdm.Point) (string, error) {
	def := preference.NewRelativeRanking(m, nil)
	if prev != nil {
		def = preference.NewRelativeRanking(m, prev)
	}
	vector := validate.NewVectorValidator(m, def)
	st := m.State()

	text, err := l.ask(ctx, prompt.Request{
		Kind:    prompt.KindRanking,
		Label:   "Ranking (e to end): ",
		Default: def.Input().String(),
		Validator: validate.Func(func(text string) error {
			if strings.TrimSpace(text) == prompt.ExitToken {
				return nil
			}
			return vector.Validate(text)
		}),
		Round:     round(st),
		Remaining: st.CurrentIter,
	})
	if err != nil {
		return "", err
	}
	if text == prompt.ExitToken {
		return text, nil
	}
	in := validate.Parse(text)
	if in.IsCommand() {
		return in.Command, nil
	}

	values, err := in.Floats()
	if err != nil {
		return "", err
	}
	if _, err := m.NextIteration(preference.NewRelativeRanking(m, values)); err != nil {
		return "", fmt.Errorf("%s iteration: %w", m.Name(), err)
	}
	l.lastRanking = mcdm.Point(values).Clone()
	logging.AuditWithSession(l.sessionID, m.Name()).Round(round(st), st.CurrentIter, text, st.Current.String())
	m.PrintCurrentIteration(l.out)
	return "", nil
}
