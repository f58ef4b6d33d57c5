// Package prompt acquires one line of validated text per request, either from
// a live terminal or from a pre-scripted source. Every backend honours the
// same contract, so the control loop runs the same code whichever one it was
// given.
package prompt

import (
	"context"

	"nautilus/internal/validate"
)

// Kind names the logical prompt being answered. Scripted answers are keyed
// on it.
type Kind string

const (
	KindStyle               Kind = "style"
	KindIterations          Kind = "iterations"
	KindENautilusIterations Kind = "enautilus_iterations"
	KindBranching           Kind = "branching"
	KindPreference          Kind = "preference"
	KindSelection           Kind = "selection"
	KindRanking             Kind = "ranking"
	KindAcknowledge         Kind = "acknowledge"
)

// Request describes one prompt.
type Request struct {
	Kind    Kind
	Label   string
	Default string
	// Validator may be nil, in which case any text is accepted.
	Validator validate.Validator

	// Round is the number of completed method rounds when the prompt is
	// shown. Setup prompts use round 0.
	Round int
	// Remaining is the method's remaining iteration budget.
	Remaining int
}

// Prompter returns accepted text for a request. Rejected input never comes
// back to the caller: interactive backends re-prompt, scripted ones fail.
// A quit request is reported as validate.ErrQuit.
type Prompter interface {
	Ask(ctx context.Context, req Request) (string, error)
}

// Func adapts a function to the Prompter interface.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Ask(ctx context.Context, req Request) (string, error) { return f(ctx, req) }
