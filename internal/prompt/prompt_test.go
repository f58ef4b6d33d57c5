package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautilus/internal/validate"
)

func TestScriptedSetupAnswers(t *testing.T) {
	s := NewScripted(DefaultScript(), nil)
	ctx := context.Background()

	tests := []struct {
		req  Request
		want string
	}{
		{Request{Kind: KindStyle, Default: "1", Validator: validate.Bounded(1, 3)}, "2"},
		{Request{Kind: KindIterations, Default: "10"}, "4"},
		{Request{Kind: KindENautilusIterations, Default: "10"}, "5"},
		{Request{Kind: KindBranching, Default: "5"}, "5"},
		{Request{Kind: KindBranching, Default: "7", Round: 1}, "7"},
		{Request{Kind: KindAcknowledge, Default: ""}, ""},
	}
	for _, tt := range tests {
		got, err := s.Ask(ctx, tt.req)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, string(tt.req.Kind))
	}
}

func TestScriptedZeroValuesUseDefaults(t *testing.T) {
	s := NewScripted(Script{}, nil)
	got, err := s.Ask(context.Background(), Request{Kind: KindIterations, Default: "6"})
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestScriptedPreferencesNeverRunPastScript(t *testing.T) {
	s := NewScripted(Script{Preferences: []string{"1,2", "3,4"}}, nil)
	ctx := context.Background()

	var got []string
	for i := 0; i < 4; i++ {
		text, err := s.Ask(ctx, Request{Kind: KindPreference})
		require.NoError(t, err)
		got = append(got, text)
	}
	assert.Equal(t, []string{"1,2", "3,4", "c", "c"}, got)
}

func TestScriptedSelections(t *testing.T) {
	s := NewScripted(Script{Selections: []string{"2"}, StopAtRemaining: 3}, nil)
	ctx := context.Background()

	text, err := s.Ask(ctx, Request{Kind: KindSelection, Default: "1", Remaining: 5})
	require.NoError(t, err)
	assert.Equal(t, "2", text)

	text, err = s.Ask(ctx, Request{Kind: KindSelection, Default: "1", Remaining: 4})
	require.NoError(t, err)
	assert.Equal(t, "1", text)

	text, err = s.Ask(ctx, Request{Kind: KindSelection, Default: "1", Remaining: 3})
	require.NoError(t, err)
	assert.Equal(t, "c", text)
}

func TestScriptedRankingsEndWithExit(t *testing.T) {
	s := NewScripted(Script{Rankings: []string{"1,1"}}, nil)
	ctx := context.Background()

	first, err := s.Ask(ctx, Request{Kind: KindRanking})
	require.NoError(t, err)
	second, err := s.Ask(ctx, Request{Kind: KindRanking})
	require.NoError(t, err)
	assert.Equal(t, "1,1", first)
	assert.Equal(t, ExitToken, second)
}

func TestScriptedValidation(t *testing.T) {
	s := NewScripted(Script{Selections: []string{"9", "q"}}, nil)
	ctx := context.Background()
	v := validate.Func(func(text string) error {
		switch text {
		case "q":
			return validate.ErrQuit
		case "9":
			return &validate.Error{Message: "9 is not a valid iteration point"}
		}
		return nil
	})

	_, err := s.Ask(ctx, Request{Kind: KindSelection, Validator: v})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid iteration point")
	assert.NotErrorIs(t, err, validate.ErrQuit)

	_, err = s.Ask(ctx, Request{Kind: KindSelection, Validator: v})
	assert.ErrorIs(t, err, validate.ErrQuit)
}

func TestScriptedEchoesAnswers(t *testing.T) {
	var out bytes.Buffer
	s := NewScripted(DefaultScript(), &out)
	_, err := s.Ask(context.Background(), Request{Kind: KindIterations, Label: "Ni: "})
	require.NoError(t, err)
	assert.Equal(t, "Ni: 4\n", out.String())
}

func TestScriptedHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewScripted(DefaultScript(), nil).Ask(ctx, Request{Kind: KindStyle})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineDefaultAndReprompt(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("\n12a\n7\n"), &out, PlainStyles())
	ctx := context.Background()

	got, err := l.Ask(ctx, Request{Label: "Ni: ", Default: "5", Validator: validate.NewNumberValidator()})
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	got, err = l.Ask(ctx, Request{Label: "Ns: ", Default: "5", Validator: validate.NewNumberValidator()})
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	assert.Contains(t, out.String(), "Ni: [5] ")
	assert.Contains(t, out.String(), "non-numeric characters")
	assert.Contains(t, out.String(), "  12a\n    ^\n")
}

func TestLineQuitAndEOF(t *testing.T) {
	ctx := context.Background()
	vec := validate.Func(func(text string) error {
		if text == "q" {
			return validate.ErrQuit
		}
		return nil
	})

	_, err := NewLine(strings.NewReader("q\n"), io.Discard, PlainStyles()).Ask(ctx, Request{Validator: vec})
	assert.ErrorIs(t, err, validate.ErrQuit)

	_, err = NewLine(strings.NewReader(""), io.Discard, PlainStyles()).Ask(ctx, Request{Kind: KindStyle})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	got, err := NewLine(strings.NewReader("3"), io.Discard, PlainStyles()).Ask(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestLineCancelWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	l := NewLine(pr, io.Discard, PlainStyles())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := l.Ask(ctx, Request{Kind: KindSelection})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Ask did not return after cancellation")
	}

	// The line typed after the cancelled prompt answers the next one.
	go func() { _, _ = io.WriteString(pw, "4\n") }()
	got, err := l.Ask(context.Background(), Request{Kind: KindSelection})
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestInputModelAcceptsDefault(t *testing.T) {
	m := newInputModel(Request{Label: "Ni: ", Default: "5", Validator: validate.NewNumberValidator()}, PlainStyles())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(inputModel)
	assert.True(t, got.done)
	assert.Equal(t, "5", got.value)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Ni: 5\n", got.View())
}

func TestInputModelRejectsAndMovesCursor(t *testing.T) {
	m := newInputModel(Request{Label: "Ni: ", Default: "12a4", Validator: validate.NewNumberValidator()}, PlainStyles())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(inputModel)
	assert.False(t, got.done)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, got.input.Position())
	assert.Contains(t, got.View(), "non-numeric characters")

	// Editing clears the message.
	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Empty(t, next.(inputModel).errMsg)
}

func TestInputModelQuit(t *testing.T) {
	m := newInputModel(Request{Label: "Preferences: "}, PlainStyles())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(inputModel)
	assert.ErrorIs(t, got.err, validate.ErrQuit)
	assert.NotNil(t, cmd)

	quitter := validate.Func(func(string) error { return validate.ErrQuit })
	m = newInputModel(Request{Default: "q", Validator: quitter}, PlainStyles())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, next.(inputModel).err, validate.ErrQuit)
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{
		"":         BackendAuto,
		"auto":     BackendAuto,
		"Terminal": BackendTerminal,
		"line":     BackendLine,
		"headless": BackendScripted,
		"scripted": BackendScripted,
	} {
		got, err := ParseBackend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBackend("gui")
	assert.Error(t, err)
}

func TestNewAutoFallsBackToScripted(t *testing.T) {
	p, backend, err := New(Options{Backend: BackendAuto, In: strings.NewReader(""), Out: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, BackendScripted, backend)
	assert.IsType(t, &Scripted{}, p)

	_, _, err = New(Options{Backend: BackendLine})
	assert.Error(t, err)

	p, _, err = New(Options{Backend: BackendLine, In: strings.NewReader("")})
	require.NoError(t, err)
	assert.IsType(t, &Line{}, p)
}

func TestThemeByName(t *testing.T) {
	assert.True(t, ThemeByName("dark").IsDark)
	assert.False(t, ThemeByName("light").IsDark)
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, ThemeByName("auto").IsDark)
}
