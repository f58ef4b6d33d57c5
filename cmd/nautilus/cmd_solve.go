package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nautilus/internal/method"
	"nautilus/internal/prompt"
)

// solveCmd runs the full workflow
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run NAUTILUS, then E-NAUTILUS while iterations remain",
	Long: `Starts at the nadir point with NAUTILUS. If the decision maker stops
before the iteration budget is spent, E-NAUTILUS continues from the point
reached, over the Pareto optimal solutions still reachable from it.`,
	RunE: runSolve,
}

var nautilusCmd = &cobra.Command{
	Use:   "nautilus",
	Short: "Run a NAUTILUS session",
	RunE:  runNautilus,
}

var enautilusCmd = &cobra.Command{
	Use:   "enautilus",
	Short: "Run an E-NAUTILUS session",
	RunE:  runENautilus,
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Run NAUTILUS rounds driven by relative rankings until 'e'",
	RunE:  runRank,
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n := method.NewNautilus(s.problem, cfg.Session.NautilusIterations)
	solution, err := s.loop.IterNautilus(s.ctx, n)
	if err != nil {
		return err
	}
	final := solution

	if remaining := n.State().CurrentIter; remaining > 0 && solution != nil {
		fmt.Fprintf(s.out, "Continuing with E-NAUTILUS for the remaining %d iterations\n", remaining)
		logger.Info("switching method", zap.Int("remaining", remaining), zap.Int("reachable", len(n.Reachable())))

		e := method.NewENautilus(s.problem, remaining, cfg.Session.Branching)
		e.StartFrom(solution, n.Reachable())
		if _, err := s.loop.IterENautilus(s.ctx, e); err != nil {
			return err
		}
		final = e.State().Prev
	}

	s.printSolution("Final solution", final)
	s.acknowledge()
	return nil
}

func runNautilus(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n := method.NewNautilus(s.problem, cfg.Session.NautilusIterations)
	solution, err := s.loop.IterNautilus(s.ctx, n)
	if err != nil {
		return err
	}
	s.printSolution("Final solution", solution)
	return nil
}

func runENautilus(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	e := method.NewENautilus(s.problem, cfg.Session.ENautilusIterations, cfg.Session.Branching)
	candidates, err := s.loop.IterENautilus(s.ctx, e)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Last round offered %d candidates\n", len(candidates))
	s.printSolution("Final solution", e.State().Prev)
	return nil
}

func runRank(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n := method.NewNautilus(s.problem, cfg.Session.NautilusIterations)
	for n.State().CurrentIter > 0 {
		res, err := s.loop.AskPref(s.ctx, n, s.loop.LastRanking())
		if err != nil {
			return err
		}
		if res == prompt.ExitToken {
			break
		}
		if res != "" {
			logger.Debug("ranking stopped by command", zap.String("command", res))
			break
		}
	}

	st := n.State()
	if st.CurrentIter == 0 {
		fmt.Fprintln(s.out, "Iteration budget spent")
	}
	if st.CurrentIter == st.UserIters {
		s.printSolution("Final solution", nil)
		return nil
	}
	s.printSolution("Final solution", st.Current)
	return nil
}
