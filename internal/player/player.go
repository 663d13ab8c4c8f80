// Package player holds the player's physical state and the per-tick movement
// integrator that advances it from a snapshot of input intents.
package player

import "chosenoffset.com/wallview/internal/trig"

// State is the player's position and orientation in world units.
type State struct {
	X, Y, Z int
	Heading int // degrees, always in [0, 360)
	Lean    int // vertical shear factor coupling depth to screen height
}

// Start returns the reference spawn state.
func Start() State {
	return State{X: 70, Y: -110, Z: 20, Heading: 0, Lean: 0}
}

// Input is a snapshot of movement intents for one tick.
type Input struct {
	Forward     bool
	Backward    bool
	TurnLeft    bool
	TurnRight   bool
	StrafeLeft  bool
	StrafeRight bool
	Modifier    bool // turns A/D into lean and W/S into height
}

// Idle reports whether no intent is active.
func (in Input) Idle() bool {
	return in == Input{}
}

// Tuning holds the per-tick movement magnitudes.
type Tuning struct {
	Step        float64 // world units moved per tick
	TurnDegrees int
	LeanStep    int
	HeightStep  int
}

// DefaultTuning returns the reference movement feel.
func DefaultTuning() Tuning {
	return Tuning{
		Step:        10,
		TurnDegrees: 4,
		LeanStep:    1,
		HeightStep:  4,
	}
}

// NormalizeHeading wraps h into [0, 360).
func NormalizeHeading(h int) int {
	return trig.Wrap(h)
}

// Move returns the state that follows s after applying one tick of input.
// The step vector is truncated to integers before it is applied.
func Move(s State, t *trig.Table, in Input, tun Tuning) State {
	cos, sin := t.Lookup(s.Heading)
	dx := int(sin * tun.Step)
	dy := int(cos * tun.Step)

	if !in.Modifier {
		if in.TurnLeft {
			s.Heading = NormalizeHeading(s.Heading - tun.TurnDegrees)
		}
		if in.TurnRight {
			s.Heading = NormalizeHeading(s.Heading + tun.TurnDegrees)
		}
		if in.Forward {
			s.X += dx
			s.Y += dy
		}
		if in.Backward {
			s.X -= dx
			s.Y -= dy
		}
	} else {
		if in.TurnLeft {
			s.Lean -= tun.LeanStep
		}
		if in.TurnRight {
			s.Lean += tun.LeanStep
		}
		if in.Forward {
			s.Z -= tun.HeightStep
		}
		if in.Backward {
			s.Z += tun.HeightStep
		}
	}

	// Strafing ignores the modifier.
	if in.StrafeRight {
		s.X += dy
		s.Y -= dx
	}
	if in.StrafeLeft {
		s.X -= dy
		s.Y += dx
	}

	return s
}
