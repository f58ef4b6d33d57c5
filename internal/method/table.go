package method

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"nautilus/internal/mcdm"
)

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func boundsTable(p *mcdm.Problem, lower, current mcdm.Point) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Objective", "Ideal", "Lower bound", "Current", "Nadir")
	for i := 0; i < p.NumObjectives(); i++ {
		t.Row(p.ObjectiveName(i), format(p.Ideal[i]), format(lower[i]), format(current[i]), format(p.Nadir[i]))
	}
	return t.String()
}

// ProblemTable renders the ideal and nadir point of a problem.
func ProblemTable(p *mcdm.Problem) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Objective", "Ideal", "Nadir")
	for i := 0; i < p.NumObjectives(); i++ {
		t.Row(p.ObjectiveName(i), format(p.Ideal[i]), format(p.Nadir[i]))
	}
	return t.String()
}

func candidateTable(p *mcdm.Problem, candidates []mcdm.Candidate) string {
	headers := []string{"#"}
	for i := 0; i < p.NumObjectives(); i++ {
		headers = append(headers, p.ObjectiveName(i))
	}
	headers = append(headers, "Reachable")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, c := range candidates {
		point := []string{strconv.Itoa(i + 1)}
		lower := []string{""}
		for j := range c.Point {
			point = append(point, format(c.Point[j]))
			lower = append(lower, ">= "+format(c.Lower[j]))
		}
		point = append(point, strconv.Itoa(len(c.Reach)))
		lower = append(lower, "")
		t.Row(point...)
		t.Row(lower...)
	}
	return t.String()
}
