// Package projection transforms the wall from world space into screen space
// for a given player state: translate, rotate, height, cull, near-plane clip
// and perspective divide.
package projection

import (
	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/trig"
)

// NearPlane is the smallest depth a vertex may have before the divide.
const NearPlane = 1

// LeanDivisor scales lean * depth into a height offset.
const LeanDivisor = 32

// Point is a top-down world coordinate.
type Point struct {
	X, Y int
}

// Wall is a vertical wall segment standing on the floor between A and B.
type Wall struct {
	A, B   Point
	Height int
}

// DefaultWall returns the single wall of the scene.
func DefaultWall() Wall {
	return Wall{
		A:      Point{X: 40, Y: 10},
		B:      Point{X: 40, Y: 290},
		Height: 40,
	}
}

// Viewport describes the target framebuffer and projection constant.
type Viewport struct {
	Width  int
	Height int
	Focal  int
}

// DefaultViewport returns the 160x120 view with a focal constant of 200.
func DefaultViewport() Viewport {
	return Viewport{Width: 160, Height: 120, Focal: 200}
}

// Vertex is a camera-space corner: X lateral, Y depth, Z height offset.
type Vertex struct {
	X, Y, Z int
}

// Corner indices into the [4]Vertex arrays used throughout this package.
const (
	LeftBottom = iota
	RightBottom
	LeftTop
	RightTop
)

// Quad is the projected wall in screen space: the two column positions plus
// the bottom and top heights at each of them.
type Quad struct {
	X1, X2 int // left and right screen X
	B1, B2 int // bottom Y at X1 and X2
	T1, T2 int // top Y at X1 and X2
}

// ToCamera translates and rotates the wall's corners into camera space
// relative to s, and applies the player's height and lean.
func ToCamera(w Wall, s player.State, t *trig.Table) [4]Vertex {
	cs, sn := t.Lookup(s.Heading)

	x1 := float64(w.A.X - s.X)
	y1 := float64(w.A.Y - s.Y)
	x2 := float64(w.B.X - s.X)
	y2 := float64(w.B.Y - s.Y)

	var c [4]Vertex

	c[LeftBottom].X = int(x1*cs - y1*sn)
	c[RightBottom].X = int(x2*cs - y2*sn)
	c[LeftBottom].Y = int(y1*cs + x1*sn)
	c[RightBottom].Y = int(y2*cs + x2*sn)

	c[LeftBottom].Z = -s.Z + int(float64(s.Lean*c[LeftBottom].Y)/LeanDivisor)
	c[RightBottom].Z = -s.Z + int(float64(s.Lean*c[RightBottom].Y)/LeanDivisor)

	c[LeftTop] = c[LeftBottom]
	c[LeftTop].Z += w.Height
	c[RightTop] = c[RightBottom]
	c[RightTop].Z += w.Height

	return c
}

// Clip moves v along the segment towards partner until it reaches the near
// plane. A vertex already on the plane is returned unchanged. The resulting
// depth is never below NearPlane.
func Clip(v, partner Vertex) Vertex {
	d := float64(v.Y - partner.Y)
	if d == 0 {
		d = 1
	}
	s := float64(v.Y-NearPlane) / d

	out := Vertex{
		X: v.X + int(s*float64(partner.X-v.X)),
		Y: v.Y + int(s*float64(partner.Y-v.Y)),
		Z: v.Z + int(s*float64(partner.Z-v.Z)),
	}
	if out.Y < NearPlane {
		out.Y = NearPlane
	}
	return out
}

// ClipNear clips whichever vertical edge lies in front of the near plane.
// It returns false when both edges are behind it and nothing is visible.
func ClipNear(c [4]Vertex) ([4]Vertex, bool) {
	if c[LeftBottom].Y < NearPlane && c[RightBottom].Y < NearPlane {
		return c, false
	}

	if c[LeftBottom].Y < NearPlane {
		c[LeftBottom] = Clip(c[LeftBottom], c[RightBottom])
		c[LeftTop] = Clip(c[LeftTop], c[RightTop])
	}
	if c[RightBottom].Y < NearPlane {
		c[RightBottom] = Clip(c[RightBottom], c[LeftBottom])
		c[RightTop] = Clip(c[RightTop], c[LeftTop])
	}

	return c, true
}

// ToScreen applies the perspective divide and centres the result in vp.
// Depths below NearPlane are treated as NearPlane.
func ToScreen(c [4]Vertex, vp Viewport) Quad {
	hw, hh := vp.Width/2, vp.Height/2

	depth := func(v Vertex) int { return max(v.Y, NearPlane) }
	sx := func(v Vertex) int { return v.X*vp.Focal/depth(v) + hw }
	sy := func(v Vertex) int { return v.Z*vp.Focal/depth(v) + hh }

	return Quad{
		X1: sx(c[LeftBottom]),
		X2: sx(c[RightBottom]),
		B1: sy(c[LeftBottom]),
		B2: sy(c[RightBottom]),
		T1: sy(c[LeftTop]),
		T2: sy(c[RightTop]),
	}
}

// Project runs the full pipeline. The second result is false when the wall
// is entirely behind the player and nothing should be drawn.
func Project(w Wall, s player.State, t *trig.Table, vp Viewport) (Quad, bool) {
	c, ok := ClipNear(ToCamera(w, s, t))
	if !ok {
		return Quad{}, false
	}
	return ToScreen(c, vp), true
}
