package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Backend names a prompting backend.
type Backend string

const (
	BackendAuto     Backend = "auto"
	BackendTerminal Backend = "terminal"
	BackendLine     Backend = "line"
	BackendScripted Backend = "scripted"
)

// ParseBackend maps a config or flag value to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendTerminal, BackendLine, BackendScripted:
		return b, nil
	case "headless":
		return BackendScripted, nil
	default:
		return "", fmt.Errorf("unknown prompt backend %q (valid: auto, terminal, line, scripted)", s)
	}
}

// Options configures New.
type Options struct {
	Backend Backend
	In      io.Reader
	Out     io.Writer
	Script  Script
	Styles  Styles
}

// New builds the prompter named by opts.Backend. Auto picks the terminal
// backend when both ends are terminals and the scripted one otherwise.
func New(opts Options) (Prompter, Backend, error) {
	backend := opts.Backend
	if backend == "" || backend == BackendAuto {
		backend = BackendScripted
		if Interactive(opts.In, opts.Out) {
			backend = BackendTerminal
		}
	}

	switch backend {
	case BackendTerminal:
		return NewTerminal(opts.In, opts.Out, opts.Styles), backend, nil
	case BackendLine:
		if opts.In == nil {
			return nil, backend, fmt.Errorf("line backend needs an input reader")
		}
		return NewLine(opts.In, opts.Out, opts.Styles), backend, nil
	case BackendScripted:
		return NewScripted(opts.Script, opts.Out), backend, nil
	default:
		return nil, backend, fmt.Errorf("unknown prompt backend %q", backend)
	}
}

// Interactive reports whether in and out are both attached to a terminal.
func Interactive(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
