// Package validate checks raw prompt text before it reaches a method.
//
// Validators accept a line of text or reject it with an *Error carrying a
// message and the cursor position where the problem starts. The quit command
// is not a rejection: validators report it as ErrQuit and the host decides
// how to end the process.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command tokens recognized in place of, or inside, normal input.
const (
	CommandContinue      = "c"
	CommandContinueUpper = "C"
	CommandQuit          = "q"
)

// Commands is the closed set of command tokens.
var Commands = []string{CommandContinue, CommandContinueUpper, CommandQuit}

// ErrQuit signals that the DM asked to quit the session.
var ErrQuit = errors.New("user exit")

// IsCommand reports whether s is exactly one of the command tokens.
func IsCommand(s string) bool {
	for _, c := range Commands {
		if s == c {
			return true
		}
	}
	return false
}

// Input is raw prompt text after the command check.
type Input struct {
	// Command is the command token found in the text, if any.
	Command string
	// Fields holds the comma separated fields when no command was found.
	Fields []string
}

// IsCommand reports whether the text carried a command token.
func (in Input) IsCommand() bool { return in.Command != "" }

// IsQuit reports whether the text asked to quit.
func (in Input) IsQuit() bool { return in.Command == CommandQuit }

// Floats parses the fields as numbers.
func (in Input) Floats() ([]float64, error) {
	if in.IsCommand() {
		return nil, fmt.Errorf("input is the command %q, not a vector", in.Command)
	}
	out := make([]float64, len(in.Fields))
	for i, f := range in.Fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// Parse splits text on commas. If the whole text, or any single field, is a
// command token the result carries that command instead of fields. A quit
// anywhere wins over the other commands.
func Parse(text string) Input {
	trimmed := strings.TrimSpace(text)
	if IsCommand(trimmed) {
		return Input{Command: trimmed}
	}

	raw := strings.Split(trimmed, ",")
	fields := make([]string, len(raw))
	found := ""
	for i, f := range raw {
		f = strings.TrimSpace(f)
		fields[i] = f
		if IsCommand(f) && found != CommandQuit {
			found = f
		}
	}
	if found != "" {
		return Input{Command: found}
	}
	return Input{Fields: fields}
}
