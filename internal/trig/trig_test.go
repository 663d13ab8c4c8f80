package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableMatchesMath(t *testing.T) {
	tbl := New()
	for d := 0; d < Degrees; d++ {
		rad := float64(d) * math.Pi / 180
		c, s := tbl.Lookup(d)
		assert.InDelta(t, math.Cos(rad), c, 1e-12, "cos(%d)", d)
		assert.InDelta(t, math.Sin(rad), s, 1e-12, "sin(%d)", d)
	}
}

func TestCardinalAngles(t *testing.T) {
	tbl := New()

	assert.Equal(t, 1.0, tbl.Cos(0))
	assert.Equal(t, 0.0, tbl.Sin(0))
	assert.InDelta(t, 0.0, tbl.Cos(90), 1e-15)
	assert.InDelta(t, 1.0, tbl.Sin(90), 1e-15)
	assert.InDelta(t, -1.0, tbl.Cos(180), 1e-15)
	assert.InDelta(t, -1.0, tbl.Sin(270), 1e-15)
}

func TestLookupWrapsOutOfRange(t *testing.T) {
	tbl := New()

	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{-4, 356},
		{-360, 0},
		{725, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.in), "Wrap(%d)", tt.in)

		c, s := tbl.Lookup(tt.in)
		wc, ws := tbl.Lookup(tt.want)
		assert.Equal(t, wc, c)
		assert.Equal(t, ws, s)
	}
}
