package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nautilus/internal/method"
	"nautilus/internal/problem"
)

var exportPath string

// problemCmd describes the configured problem
var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Show the configured problem and optionally export its point set",
	Long: `Prints the objectives, ideal and nadir points, and the size of the Pareto
optimal point set of the configured problem.

Example:
  nautilus problem --export river.yaml
  nautilus --problem-file river.yaml solve`,
	RunE: runProblem,
}

func init() {
	problemCmd.Flags().StringVarP(&exportPath, "export", "o", "", "Write the point set as YAML to this path")
}

func runProblem(cmd *cobra.Command, args []string) error {
	p, err := loadProblem(cfg.Problem)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Problem: %s\n", p.Name)
	fmt.Fprintf(out, "Pareto optimal points: %d\n", len(p.Points))
	fmt.Fprintln(out, method.ProblemTable(p))

	if exportPath != "" {
		if err := problem.Save(exportPath, p); err != nil {
			return err
		}
		fmt.Fprintf(out, "Point set written to %s\n", exportPath)
	}
	return nil
}
