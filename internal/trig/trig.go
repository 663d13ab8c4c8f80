// Package trig provides the precomputed sine/cosine table shared by movement
// and projection. Angles are whole degrees.
package trig

import "math"

// Degrees is the number of entries in the table (one per integer degree).
const Degrees = 360

// Table holds cos and sin for every integer degree in [0, 360).
// It is immutable after New returns.
type Table struct {
	cos [Degrees]float64
	sin [Degrees]float64
}

// New builds the table.
func New() *Table {
	t := &Table{}
	for d := 0; d < Degrees; d++ {
		rad := float64(d) / 180.0 * math.Pi
		t.cos[d] = math.Cos(rad)
		t.sin[d] = math.Sin(rad)
	}
	return t
}

// Lookup returns (cos, sin) for the given degree. Values outside [0, 360)
// wrap around instead of faulting.
func (t *Table) Lookup(deg int) (cos, sin float64) {
	i := Wrap(deg)
	return t.cos[i], t.sin[i]
}

// Cos returns the cosine of deg.
func (t *Table) Cos(deg int) float64 {
	return t.cos[Wrap(deg)]
}

// Sin returns the sine of deg.
func (t *Table) Sin(deg int) float64 {
	return t.sin[Wrap(deg)]
}

// Wrap maps any integer degree into [0, 360).
func Wrap(deg int) int {
	deg %= Degrees
	if deg < 0 {
		deg += Degrees
	}
	return deg
}
