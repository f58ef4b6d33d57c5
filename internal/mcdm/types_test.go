package mcdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointString(t *testing.T) {
	assert.Equal(t, "1,2.5,-3", Point{1, 2.5, -3}.String())
	assert.Equal(t, "", Point{}.String())
}

func TestPointDominates(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want bool
	}{
		{"strictly better everywhere", Point{1, 1}, Point{2, 2}, true},
		{"better in one equal in other", Point{1, 2}, Point{2, 2}, true},
		{"equal", Point{2, 2}, Point{2, 2}, false},
		{"trade-off", Point{1, 3}, Point{2, 2}, false},
		{"length mismatch", Point{1}, Point{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Dominates(tt.q))
		})
	}
}

func TestPointClone(t *testing.T) {
	p := Point{1, 2}
	c := p.Clone()
	c[0] = 9
	assert.Equal(t, 1.0, p[0])
	assert.Nil(t, Point(nil).Clone())
}

func TestProblemRanges(t *testing.T) {
	p := &Problem{Nadir: Point{10, 5, 1}, Ideal: Point{0, 5, 0}}
	assert.Equal(t, Point{10, 1, 1}, p.Ranges())
	assert.Equal(t, 3, p.NumObjectives())
	assert.Equal(t, "f2", p.ObjectiveName(1))
}

func TestSelectionIsPreference(t *testing.T) {
	var pref Preference = Selection{Point: Point{1, 2}, Lower: Point{0, 0}}
	assert.Equal(t, Point{1, 2}, pref.Input())
	assert.NoError(t, pref.CheckInput(nil, nil))
}
