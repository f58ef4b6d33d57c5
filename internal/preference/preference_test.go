package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautilus/internal/mcdm"
	"nautilus/internal/mcdm/mcdmtest"
)

func TestDefaultsAreSelfAccepted(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7} {
		m := mcdmtest.New(n)
		for _, style := range Styles {
			pref, err := New(style, m, nil)
			require.NoError(t, err)

			def := pref.DefaultInput()
			rebuilt, err := New(style, m, def)
			require.NoError(t, err)
			assert.NoError(t, rebuilt.CheckInput(def, m.Problem()), "%s default rejected for %d objectives", style, n)
			assert.Equal(t, def, rebuilt.Input())
		}
	}
}

func TestNewUnknownStyle(t *testing.T) {
	_, err := New(Style(9), mcdmtest.New(2), nil)
	assert.Error(t, err)
	assert.False(t, Style(0).Valid())
	assert.True(t, StyleDirect.Valid())
}

func TestPercentageCheckInput(t *testing.T) {
	m := mcdmtest.New(4)
	p := NewPercentage(m, nil)

	assert.NoError(t, p.CheckInput([]float64{10, 30, 10, 50}, m.Problem()))
	assert.ErrorContains(t, p.CheckInput([]float64{10, 30, 10, 10}, m.Problem()), "sum to 100")
	assert.ErrorContains(t, p.CheckInput([]float64{-10, 60, 25, 25}, m.Problem()), "negative")
	assert.ErrorContains(t, p.CheckInput([]float64{50, 50}, m.Problem()), "requires 4 items")
}

func TestRelativeRankingCheckInput(t *testing.T) {
	m := mcdmtest.New(4)
	r := NewRelativeRanking(m, nil)

	assert.NoError(t, r.CheckInput([]float64{2, 2, 1, 1}, m.Problem()))
	assert.NoError(t, r.CheckInput([]float64{10, 30, 10, 10}, m.Problem()))
	assert.ErrorContains(t, r.CheckInput([]float64{0, 1, 1, 1}, m.Problem()), "at least 1")
}

func TestDirectCheckInput(t *testing.T) {
	m := mcdmtest.New(2)
	d := NewDirect(m, nil)

	assert.Equal(t, mcdm.Point{10, 10}, d.DefaultInput())
	assert.NoError(t, d.CheckInput([]float64{1, 0.5}, m.Problem()))
	assert.ErrorContains(t, d.CheckInput([]float64{1, 0}, m.Problem()), "positive")
}

func TestWeights(t *testing.T) {
	m := mcdmtest.New(2) // ranges are 10

	r := NewRelativeRanking(m, []float64{1, 2})
	assert.InDeltaSlice(t, []float64{0.1, 0.05}, []float64(r.Weights()), 1e-12)

	p := NewPercentage(m, []float64{50, 50})
	assert.InDeltaSlice(t, []float64{0.2, 0.2}, []float64(p.Weights()), 1e-12)

	d := NewDirect(m, []float64{4, 2})
	assert.InDeltaSlice(t, []float64{0.25, 0.5}, []float64(d.Weights()), 1e-12)
}

func TestInputIsCopied(t *testing.T) {
	m := mcdmtest.New(2)
	values := []float64{1, 2}
	r := NewRelativeRanking(m, values)
	values[0] = 7
	got := r.Input()
	got[1] = 9
	assert.Equal(t, mcdm.Point{1, 2}, r.Input())
}
