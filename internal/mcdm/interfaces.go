package mcdm

import "io"

// Method is an interactive multiobjective method the control loop can drive.
type Method interface {
	Name() string
	Problem() *Problem
	State() *State

	// PrintCurrentIteration writes a human readable view of the current
	// iteration to w.
	PrintCurrentIteration(w io.Writer)

	// NextIteration advances the method by exactly one round. pref may be
	// nil, in which case the method primes its first round. Implementations
	// decrement State().CurrentIter themselves.
	NextIteration(pref Preference) (Step, error)
}

// Preference is preference information supplied by the DM for one round.
type Preference interface {
	// Input is the raw vector the preference was built from.
	Input() Point
	// DefaultInput suggests a starting vector for the prompt.
	DefaultInput() Point
	// CheckInput returns an error describing why values are not acceptable
	// for this kind of preference, or nil.
	CheckInput(values []float64, p *Problem) error
}

// Weighted is implemented by preferences that translate into weights of an
// achievement scalarizing function.
type Weighted interface {
	Weights() Point
}

// Selection is the DM picking one of the candidates of the previous round.
type Selection struct {
	Point Point
	Lower Point
}

func (s Selection) Input() Point { return s.Point }

func (s Selection) DefaultInput() Point { return s.Point }

func (s Selection) CheckInput([]float64, *Problem) error { return nil }
