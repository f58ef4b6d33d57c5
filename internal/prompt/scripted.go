package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"nautilus/internal/logging"
	"nautilus/internal/validate"
)

// ExitToken ends a ranking session.
const ExitToken = "e"

// Script holds the answers of a headless run. Zero values fall back to the
// prompt default.
type Script struct {
	PreferenceStyle     int
	Iterations          int
	ENautilusIterations int
	Branching           int

	// Preferences are answered in order to the NAUTILUS preference prompt.
	// Once they run out the run stops with the continue command.
	Preferences []string
	// Selections are answered in order to candidate selection prompts, the
	// prompt default after they run out.
	Selections []string
	// Rankings are answered in order to ranking prompts, ExitToken after
	// they run out.
	Rankings []string

	// StopAtRemaining answers a selection with the continue command when the
	// method has exactly this many iterations left. Zero disables it.
	StopAtRemaining int
}

// DefaultScript mirrors the reference session: relative ranks, four
// NAUTILUS rounds, five E-NAUTILUS rounds with five candidates each.
func DefaultScript() Script {
	return Script{
		PreferenceStyle:     2,
		Iterations:          4,
		ENautilusIterations: 5,
		Branching:           5,
		Preferences: []string{
			"2,2,1,1",
			"2,2,1,1",
			"2,3,1,4",
			"1,1,2,2",
		},
	}
}

// Scripted answers prompts from a Script without blocking. Answers are
// echoed to out, when set, so transcripts of headless runs read like
// interactive ones.
type Scripted struct {
	script Script
	out    io.Writer

	preferences int
	selections  int
	rankings    int
}

// NewScripted returns a headless prompter. out may be nil.
func NewScripted(script Script, out io.Writer) *Scripted {
	return &Scripted{script: script, out: out}
}

func (s *Scripted) Ask(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := s.answer(req)
	if s.out != nil {
		fmt.Fprintf(s.out, "%s%s\n", req.Label, text)
	}
	logging.PromptDebug("scripted %s (round %d, remaining %d): %q", req.Kind, req.Round, req.Remaining, text)

	if req.Validator != nil {
		if err := req.Validator.Validate(text); err != nil {
			if errors.Is(err, validate.ErrQuit) {
				return "", err
			}
			return "", fmt.Errorf("scripted answer %q for %s prompt: %w", text, req.Kind, err)
		}
	}
	return text, nil
}

func (s *Scripted) answer(req Request) string {
	switch req.Kind {
	case KindStyle:
		return intOr(s.script.PreferenceStyle, req.Default)
	case KindIterations:
		return intOr(s.script.Iterations, req.Default)
	case KindENautilusIterations:
		return intOr(s.script.ENautilusIterations, req.Default)
	case KindBranching:
		if req.Round == 0 {
			return intOr(s.script.Branching, req.Default)
		}
		return req.Default
	case KindPreference:
		if s.preferences >= len(s.script.Preferences) {
			return validate.CommandContinue
		}
		s.preferences++
		return s.script.Preferences[s.preferences-1]
	case KindSelection:
		if s.script.StopAtRemaining > 0 && req.Remaining == s.script.StopAtRemaining {
			return validate.CommandContinue
		}
		if s.selections >= len(s.script.Selections) {
			return req.Default
		}
		s.selections++
		return s.script.Selections[s.selections-1]
	case KindRanking:
		if s.rankings >= len(s.script.Rankings) {
			return ExitToken
		}
		s.rankings++
		return s.script.Rankings[s.rankings-1]
	default:
		return req.Default
	}
}

func intOr(v int, def string) string {
	if v > 0 {
		return strconv.Itoa(v)
	}
	return def
}
