package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nautilus/internal/logging"
	"nautilus/internal/validate"
)

// Terminal prompts on a live terminal. The input is pre-filled with the
// request default; a rejected answer stays editable with the cursor moved to
// where the validator found the problem.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewTerminal returns a terminal prompter. Nil in or out use the process
// stdin and stdout.
func NewTerminal(in io.Reader, out io.Writer, styles Styles) *Terminal {
	return &Terminal{in: in, out: out, styles: styles}
}

func (t *Terminal) Ask(ctx context.Context, req Request) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	if t.out != nil {
		opts = append(opts, tea.WithOutput(t.out))
	}

	final, err := tea.NewProgram(newInputModel(req, t.styles), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("terminal prompt %s: %w", req.Kind, err)
	}

	m, ok := final.(inputModel)
	if !ok {
		return "", fmt.Errorf("terminal prompt %s: unexpected model %T", req.Kind, final)
	}
	if m.err != nil {
		return "", m.err
	}
	logging.PromptDebug("%s answered %q", req.Kind, m.value)
	return m.value, nil
}

// inputModel is the bubbletea model behind one terminal prompt.
type inputModel struct {
	req    Request
	input  textinput.Model
	styles Styles

	errMsg string
	value  string
	err    error
	done   bool
}

func newInputModel(req Request, styles Styles) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = req.Default
	ti.SetValue(req.Default)
	ti.CursorEnd()
	ti.Focus()

	return inputModel{req: req, input: ti, styles: styles}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = validate.ErrQuit
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if m.req.Validator != nil {
		if err := m.req.Validator.Validate(text); err != nil {
			if errors.Is(err, validate.ErrQuit) {
				m.err = err
				m.done = true
				return m, tea.Quit
			}
			var verr *validate.Error
			if errors.As(err, &verr) {
				m.errMsg = verr.Message
				m.input.SetCursor(verr.Cursor)
			} else {
				m.errMsg = err.Error()
			}
			logging.PromptDebug("%s rejected %q: %s", m.req.Kind, text, m.errMsg)
			return m, nil
		}
	}
	m.value = text
	m.done = true
	return m, tea.Quit
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.req.Label))
	if m.done {
		b.WriteString(m.value)
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Hint.Render("enter to accept, esc to quit"))
		b.WriteString("\n")
	}
	return b.String()
}
