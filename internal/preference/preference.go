// Package preference implements the ways a DM can express preferences in
// NAUTILUS: percentages of improvement, relative ranks, or direct
// improvement amounts. Each encoding differs only in how its input vector
// is turned into achievement function weights.
package preference

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"nautilus/internal/mcdm"
)

// Style selects a preference encoding. The numbering matches the menu shown
// to the DM.
type Style int

const (
	StylePercentage Style = iota + 1
	StyleRelativeRanking
	StyleDirect
)

// Styles lists the encodings in menu order.
var Styles = []Style{StylePercentage, StyleRelativeRanking, StyleDirect}

func (s Style) String() string {
	switch s {
	case StylePercentage:
		return "Percentages"
	case StyleRelativeRanking:
		return "Relative ranks"
	case StyleDirect:
		return "Direct"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	return s >= StylePercentage && s <= StyleDirect
}

// New builds a preference of the given style. A nil values slice yields the
// style's default input.
func New(style Style, m mcdm.Method, values []float64) (mcdm.Preference, error) {
	switch style {
	case StylePercentage:
		return NewPercentage(m, values), nil
	case StyleRelativeRanking:
		return NewRelativeRanking(m, values), nil
	case StyleDirect:
		return NewDirect(m, values), nil
	default:
		return nil, fmt.Errorf("unknown preference style %d", int(style))
	}
}

// base carries what every encoding shares.
type base struct {
	method mcdm.Method
	input  mcdm.Point
}

func (b base) Input() mcdm.Point { return b.input.Clone() }

func (b base) problem() *mcdm.Problem { return b.method.Problem() }

func checkLength(values []float64, p *mcdm.Problem) error {
	if len(values) != p.NumObjectives() {
		return fmt.Errorf("problem requires %d items in the vector", p.NumObjectives())
	}
	return nil
}

// Percentage is the DM stating how many percent of the total improvement
// should go to each objective.
type Percentage struct{ base }

// NewPercentage returns a percentage preference; nil values use the default.
func NewPercentage(m mcdm.Method, values []float64) *Percentage {
	p := &Percentage{base{method: m}}
	if values == nil {
		values = p.DefaultInput()
	}
	p.input = mcdm.Point(values).Clone()
	return p
}

// DefaultInput splits 100 percent evenly across the objectives.
func (p *Percentage) DefaultInput() mcdm.Point {
	n := p.problem().NumObjectives()
	out := make(mcdm.Point, n)
	for i := range out {
		out[i] = 100 / float64(n)
	}
	return out
}

const percentTolerance = 1e-6

func (p *Percentage) CheckInput(values []float64, prob *mcdm.Problem) error {
	if err := checkLength(values, prob); err != nil {
		return err
	}
	for i, v := range values {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("percentage for %s must not be negative", prob.ObjectiveName(i))
		}
	}
	sum, err := stats.Sum(values)
	if err != nil {
		return err
	}
	if math.Abs(sum-100) > percentTolerance {
		return fmt.Errorf("percentages must sum to 100, got %g", sum)
	}
	return nil
}

// minPercent keeps an objective that receives no improvement share from
// producing an infinite weight.
const minPercent = 1e-3

func (p *Percentage) Weights() mcdm.Point {
	ranges := p.problem().Ranges()
	out := make(mcdm.Point, len(ranges))
	for i := range ranges {
		share := math.Max(p.input[i], minPercent) / 100
		out[i] = 1 / (share * ranges[i])
	}
	return out
}

// RelativeRanking is the DM ranking objectives by how important it is to
// improve them. Rank 1 is the most important; equal ranks are allowed.
type RelativeRanking struct{ base }

// NewRelativeRanking returns a ranking preference; nil values use the default.
func NewRelativeRanking(m mcdm.Method, values []float64) *RelativeRanking {
	r := &RelativeRanking{base{method: m}}
	if values == nil {
		values = r.DefaultInput()
	}
	r.input = mcdm.Point(values).Clone()
	return r
}

// DefaultInput ranks every objective equally.
func (r *RelativeRanking) DefaultInput() mcdm.Point {
	out := make(mcdm.Point, r.problem().NumObjectives())
	for i := range out {
		out[i] = 1
	}
	return out
}

func (r *RelativeRanking) CheckInput(values []float64, prob *mcdm.Problem) error {
	if err := checkLength(values, prob); err != nil {
		return err
	}
	for i, v := range values {
		if v < 1 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("rank for %s must be at least 1, got %g", prob.ObjectiveName(i), v)
		}
	}
	return nil
}

func (r *RelativeRanking) Weights() mcdm.Point {
	ranges := r.problem().Ranges()
	out := make(mcdm.Point, len(ranges))
	for i := range ranges {
		out[i] = 1 / (r.input[i] * ranges[i])
	}
	return out
}

// Direct is the DM stating the amount of improvement wanted in each
// objective, in objective units.
type Direct struct{ base }

// NewDirect returns a direct specification; nil values use the default.
func NewDirect(m mcdm.Method, values []float64) *Direct {
	d := &Direct{base{method: m}}
	if values == nil {
		values = d.DefaultInput()
	}
	d.input = mcdm.Point(values).Clone()
	return d
}

// DefaultInput asks for the full range of every objective, which weights the
// objectives equally after normalization.
func (d *Direct) DefaultInput() mcdm.Point {
	return d.problem().Ranges()
}

func (d *Direct) CheckInput(values []float64, prob *mcdm.Problem) error {
	if err := checkLength(values, prob); err != nil {
		return err
	}
	for i, v := range values {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("improvement for %s must be positive, got %g", prob.ObjectiveName(i), v)
		}
	}
	return nil
}

func (d *Direct) Weights() mcdm.Point {
	out := make(mcdm.Point, len(d.input))
	for i, v := range d.input {
		out[i] = 1 / v
	}
	return out
}
