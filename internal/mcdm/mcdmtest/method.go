// Package mcdmtest provides a scripted mcdm.Method for tests of code that
// drives methods.
package mcdmtest

import (
	"fmt"
	"io"

	"nautilus/internal/mcdm"
)

// Method records every NextIteration call and answers with scripted steps.
// When Steps runs out it synthesizes a step whose solution and candidates
// encode the call number.
type Method struct {
	Prob  *mcdm.Problem
	St    mcdm.State
	Steps []mcdm.Step
	Err   error

	Calls   []mcdm.Preference
	Printed int
}

// New returns a fake method over a problem with n objectives, nadir 10 and
// ideal 0 in every objective.
func New(n int) *Method {
	nadir := make(mcdm.Point, n)
	ideal := make(mcdm.Point, n)
	for i := range nadir {
		nadir[i] = 10
	}
	return &Method{
		Prob: &mcdm.Problem{Name: "fake", Nadir: nadir, Ideal: ideal},
		St: mcdm.State{
			Current: nadir.Clone(),
			Prev:    nadir.Clone(),
		},
	}
}

// WithCandidates sets k candidates on the state, candidate i having every
// coordinate equal to i+1 and lower bound i.
func (m *Method) WithCandidates(k int) *Method {
	m.St.Candidates = candidates(m.Prob.NumObjectives(), k, 0)
	return m
}

func (m *Method) Name() string { return "fake" }

func (m *Method) Problem() *mcdm.Problem { return m.Prob }

func (m *Method) State() *mcdm.State { return &m.St }

func (m *Method) PrintCurrentIteration(w io.Writer) {
	m.Printed++
	fmt.Fprintf(w, "fake iteration %d\n", len(m.Calls))
}

func (m *Method) NextIteration(pref mcdm.Preference) (mcdm.Step, error) {
	if m.Err != nil {
		return mcdm.Step{}, m.Err
	}
	call := len(m.Calls)
	m.Calls = append(m.Calls, pref)

	var step mcdm.Step
	if call < len(m.Steps) {
		step = m.Steps[call]
	} else {
		n := m.Prob.NumObjectives()
		sol := make(mcdm.Point, n)
		for i := range sol {
			sol[i] = float64(call + 1)
		}
		k := m.St.Branching
		if k <= 0 {
			k = 3
		}
		step = mcdm.Step{Solution: sol, Lower: make(mcdm.Point, n), Candidates: candidates(n, k, call*10)}
	}

	if sel, ok := pref.(mcdm.Selection); ok {
		m.St.Prev = sel.Point.Clone()
	}
	if step.Solution != nil {
		m.St.Current = step.Solution.Clone()
	}
	m.St.Candidates = step.Candidates
	if m.St.CurrentIter > 0 {
		m.St.CurrentIter--
	}
	return step, nil
}

func candidates(n, k, offset int) []mcdm.Candidate {
	out := make([]mcdm.Candidate, k)
	for i := range out {
		p := make(mcdm.Point, n)
		lo := make(mcdm.Point, n)
		for j := range p {
			p[j] = float64(offset + i + 1)
			lo[j] = float64(offset + i)
		}
		out[i] = mcdm.Candidate{Point: p, Lower: lo, Reach: []mcdm.Point{lo}}
	}
	return out
}
