package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nautilus/internal/config"
	"nautilus/internal/interact"
	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
	"nautilus/internal/problem"
	"nautilus/internal/prompt"
)

// session bundles what every solving command needs.
type session struct {
	ctx      context.Context
	out      io.Writer
	prompter prompt.Prompter
	loop     *interact.Loop
	problem  *mcdm.Problem

	closers []func()
}

func newSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	s := &session{ctx: ctx, closers: []func(){stop}}

	stdout := cmd.OutOrStdout()
	s.out = stdout
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		s.closers = append(s.closers, func() { f.Close() })
		s.out = io.MultiWriter(stdout, f)
	}

	in := cmd.InOrStdin()
	backend, err := prompt.ParseBackend(cfg.Session.Backend)
	if err != nil {
		s.Close()
		return nil, err
	}
	if backend == prompt.BackendAuto {
		backend = prompt.BackendScripted
		if prompt.Interactive(in, stdout) {
			backend = prompt.BackendTerminal
		}
	}

	// The terminal backend draws on the real terminal; everything else goes
	// through the transcript.
	promptOut := s.out
	if backend == prompt.BackendTerminal {
		promptOut = stdout
	}
	s.prompter, _, err = prompt.New(prompt.Options{
		Backend: backend,
		In:      in,
		Out:     promptOut,
		Script:  scriptFromConfig(cfg.Script),
		Styles:  stylesFromConfig(cfg.UI),
	})
	if err != nil {
		s.Close()
		return nil, err
	}

	if s.problem, err = loadProblem(cfg.Problem); err != nil {
		s.Close()
		return nil, err
	}

	s.loop = interact.New(s.prompter, s.out)
	logging.Session("session %s: backend=%s problem=%s points=%d",
		s.loop.SessionID(), backend, s.problem.Name, len(s.problem.Points))
	logger.Info("session started",
		zap.String("session", s.loop.SessionID()),
		zap.String("backend", string(backend)),
		zap.String("problem", s.problem.Name),
		zap.Int("points", len(s.problem.Points)))
	return s, nil
}

// Close releases the signal handler and the transcript file.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func (s *session) printSolution(label string, p mcdm.Point) {
	if p == nil {
		fmt.Fprintf(s.out, "%s: none\n", label)
		return
	}
	fmt.Fprintf(s.out, "%s:\n", label)
	for i, v := range p {
		fmt.Fprintf(s.out, "  %-24s %g\n", s.problem.ObjectiveName(i), v)
	}
}

// acknowledge waits for the DM to dismiss the session. A closed input is
// as good as an answer.
func (s *session) acknowledge() {
	_, err := s.prompter.Ask(s.ctx, prompt.Request{
		Kind:  prompt.KindAcknowledge,
		Label: "Press ENTER to exit",
	})
	if err != nil {
		logger.Debug("acknowledge prompt", zap.Error(err))
		logging.SessionWarn("acknowledge prompt: %v", err)
	}
}

func loadProblem(pc config.ProblemConfig) (*mcdm.Problem, error) {
	if pc.PointsFile != "" {
		return problem.Load(pc.PointsFile)
	}
	return problem.Builtin(pc.Name, pc.Samples)
}

func scriptFromConfig(sc config.ScriptConfig) prompt.Script {
	return prompt.Script{
		PreferenceStyle:     sc.PreferenceStyle,
		Iterations:          sc.Iterations,
		ENautilusIterations: sc.ENautilusIterations,
		Branching:           sc.Branching,
		Preferences:         sc.Preferences,
		Selections:          sc.Selections,
		Rankings:            sc.Rankings,
		StopAtRemaining:     sc.StopAtRemaining,
	}
}

func stylesFromConfig(ui config.UIConfig) prompt.Styles {
	if ui.NoColor {
		return prompt.PlainStyles()
	}
	return prompt.NewStyles(prompt.ThemeByName(ui.Theme))
}
