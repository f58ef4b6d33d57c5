package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"nautilus/internal/logging"
	"nautilus/internal/validate"
)

// Line prompts over a plain reader and writer, one line per answer. An empty
// line takes the default. Rejected answers print the message with a caret
// under the offending position and ask again.
type Line struct {
	reader *bufio.Reader
	out    io.Writer
	styles Styles

	// pending holds a read abandoned by a cancelled Ask; the next Ask takes
	// its line instead of starting a second reader.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewLine returns a line prompter reading from in and writing to out.
func NewLine(in io.Reader, out io.Writer, styles Styles) *Line {
	return &Line{reader: bufio.NewReader(in), out: out, styles: styles}
}

func (l *Line) Ask(ctx context.Context, req Request) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(l.out, l.styles.Label.Render(req.Label))
		if req.Default != "" {
			fmt.Fprint(l.out, l.styles.Default.Render("["+req.Default+"]"), " ")
		}

		line, err := l.readLine(ctx)
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("prompt %s: %w", req.Kind, io.ErrUnexpectedEOF)
			}
			return "", fmt.Errorf("prompt %s: %w", req.Kind, err)
		}

		text := strings.TrimRight(line, "\r\n")
		if text == "" {
			text = req.Default
		}

		if req.Validator != nil {
			if verr := req.Validator.Validate(text); verr != nil {
				if errors.Is(verr, validate.ErrQuit) {
					return "", verr
				}
				l.explain(text, verr)
				logging.PromptDebug("%s rejected %q: %v", req.Kind, text, verr)
				continue
			}
		}
		return text, nil
	}
}

// readLine reads one line without holding up cancellation. The read itself
// cannot be interrupted, so it stays pending for the next call.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if l.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := l.reader.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		l.pending = ch
	}
	select {
	case r := <-l.pending:
		l.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (l *Line) explain(text string, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) && verr.Cursor > 0 && verr.Cursor <= len(text) {
		fmt.Fprintf(l.out, "  %s\n  %s^\n", text, strings.Repeat(" ", verr.Cursor))
	}
	fmt.Fprintln(l.out, l.styles.Error.Render(err.Error()))
}
