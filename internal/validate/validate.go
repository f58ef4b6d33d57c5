package validate

import (
	"fmt"
	"strconv"
	"strings"

	"nautilus/internal/mcdm"
)

// Validator accepts or rejects one line of prompt text.
type Validator interface {
	Validate(text string) error
}

// Func adapts a function to the Validator interface.
type Func func(text string) error

func (f Func) Validate(text string) error { return f(text) }

// Error is a rejected input. Cursor is the index into the text where the
// problem starts.
type Error struct {
	Message string
	Cursor  int
}

func (e *Error) Error() string { return e.Message }

func reject(cursor int, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Cursor: cursor}
}

// IterValidator accepts a command token or the 1-based index of one of the
// candidates the method offered when the validator was built.
type IterValidator struct {
	legal map[string]bool
}

// NewIterValidator captures the candidate count of m. Build a new validator
// every round, the count changes.
func NewIterValidator(m mcdm.Method) *IterValidator {
	n := len(m.State().Candidates)
	legal := make(map[string]bool, n+len(Commands))
	for i := 1; i <= n; i++ {
		legal[strconv.Itoa(i)] = true
	}
	for _, c := range Commands {
		legal[c] = true
	}
	return &IterValidator{legal: legal}
}

func (v *IterValidator) Validate(text string) error {
	if text == CommandQuit {
		return ErrQuit
	}
	if !v.legal[text] {
		return reject(0, "%s is not a valid iteration point", text)
	}
	return nil
}

// VectorValidator accepts a command token or one number per objective. When
// a preference is attached it also has to accept the numbers.
type VectorValidator struct {
	problem    *mcdm.Problem
	preference mcdm.Preference
}

// NewVectorValidator validates vectors for m's problem. pref may be nil.
func NewVectorValidator(m mcdm.Method, pref mcdm.Preference) *VectorValidator {
	return &VectorValidator{problem: m.Problem(), preference: pref}
}

func (v *VectorValidator) Validate(text string) error {
	in := Parse(text)
	if in.IsQuit() {
		return ErrQuit
	}
	if in.IsCommand() {
		return nil
	}

	nfun := v.problem.NumObjectives()
	if len(in.Fields) != nfun {
		return reject(0, "Problem requires %d items in the vector", nfun)
	}

	values := make([]float64, nfun)
	offset := 0
	raw := strings.Split(text, ",")
	for i, f := range in.Fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return reject(offset, "item %d is not a number: %q", i+1, f)
		}
		values[i] = x
		offset += len(raw[i]) + 1
	}

	if v.preference != nil {
		if err := v.preference.CheckInput(values, v.problem); err != nil {
			return reject(0, "%s", err.Error())
		}
	}
	return nil
}

// NumberValidator accepts a non-negative integer, optionally within bounds.
// A nil bound is open.
type NumberValidator struct {
	Min *int
	Max *int
}

// NewNumberValidator accepts integers of at least 1.
func NewNumberValidator() *NumberValidator {
	return AtLeast(1)
}

// AtLeast accepts integers of at least lo.
func AtLeast(lo int) *NumberValidator {
	return &NumberValidator{Min: &lo}
}

// Bounded accepts integers in [lo, hi].
func Bounded(lo, hi int) *NumberValidator {
	return &NumberValidator{Min: &lo, Max: &hi}
}

func (v *NumberValidator) Validate(text string) error {
	if text == "" {
		return reject(0, "a number is required")
	}
	for i, c := range text {
		if c < '0' || c > '9' {
			return reject(i, "This input contains non-numeric characters")
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return reject(0, "number %s is too large", text)
	}
	if v.Min != nil && n < *v.Min {
		return reject(0, "The number must be at least %d", *v.Min)
	}
	if v.Max != nil && n > *v.Max {
		return reject(0, "The number must be at most %d", *v.Max)
	}
	return nil
}
