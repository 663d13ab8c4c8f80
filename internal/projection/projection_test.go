package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/trig"
)

func TestToCameraAtSpawn(t *testing.T) {
	c := ToCamera(DefaultWall(), player.Start(), trig.New())

	assert.Equal(t, Vertex{X: -30, Y: 120, Z: -20}, c[LeftBottom])
	assert.Equal(t, Vertex{X: -30, Y: 400, Z: -20}, c[RightBottom])
	assert.Equal(t, Vertex{X: -30, Y: 120, Z: 20}, c[LeftTop])
	assert.Equal(t, Vertex{X: -30, Y: 400, Z: 20}, c[RightTop])
}

func TestToCameraLeanShearsWithDepth(t *testing.T) {
	s := player.Start()
	s.Lean = 2

	c := ToCamera(DefaultWall(), s, trig.New())

	// 2*120/32 = 7.5 and 2*400/32 = 25
	assert.Equal(t, -20+7, c[LeftBottom].Z)
	assert.Equal(t, -20+25, c[RightBottom].Z)
	assert.Equal(t, c[LeftBottom].Z+40, c[LeftTop].Z)
	assert.Equal(t, c[RightBottom].Z+40, c[RightTop].Z)
}

func TestClipOnPlaneIsUnchanged(t *testing.T) {
	v := Vertex{X: 3, Y: 1, Z: 7}
	got := Clip(v, Vertex{X: 10, Y: 5, Z: 20})
	assert.Equal(t, v, got)
}

func TestClipInterpolatesToPlane(t *testing.T) {
	got := Clip(Vertex{X: 0, Y: -3, Z: 0}, Vertex{X: 8, Y: 5, Z: 16})
	assert.Equal(t, Vertex{X: 4, Y: 1, Z: 8}, got)
}

func TestClipEqualDepthsDoesNotDivideByZero(t *testing.T) {
	got := Clip(Vertex{X: 2, Y: 0, Z: 2}, Vertex{X: 6, Y: 0, Z: 10})
	assert.GreaterOrEqual(t, got.Y, NearPlane)
}

func TestClipNearCullsWhenBothBehind(t *testing.T) {
	c := [4]Vertex{
		{X: -5, Y: 0, Z: 0},
		{X: 5, Y: -10, Z: 0},
		{X: -5, Y: 0, Z: 40},
		{X: 5, Y: -10, Z: 40},
	}
	_, ok := ClipNear(c)
	assert.False(t, ok)
}

func TestClipNearClipsLeftEdgeOnly(t *testing.T) {
	c := [4]Vertex{
		{X: 0, Y: -3, Z: 0},
		{X: 8, Y: 5, Z: 16},
		{X: 0, Y: -3, Z: 40},
		{X: 8, Y: 5, Z: 56},
	}

	out, ok := ClipNear(c)
	require.True(t, ok)

	assert.Equal(t, Vertex{X: 4, Y: 1, Z: 8}, out[LeftBottom])
	assert.Equal(t, Vertex{X: 4, Y: 1, Z: 48}, out[LeftTop])
	assert.Equal(t, c[RightBottom], out[RightBottom])
	assert.Equal(t, c[RightTop], out[RightTop])
}

func TestClipNearClipsRightEdgeOnly(t *testing.T) {
	c := [4]Vertex{
		{X: 8, Y: 5, Z: 16},
		{X: 0, Y: -3, Z: 0},
		{X: 8, Y: 5, Z: 56},
		{X: 0, Y: -3, Z: 40},
	}

	out, ok := ClipNear(c)
	require.True(t, ok)

	assert.Equal(t, c[LeftBottom], out[LeftBottom])
	assert.Equal(t, Vertex{X: 4, Y: 1, Z: 8}, out[RightBottom])
	assert.Equal(t, Vertex{X: 4, Y: 1, Z: 48}, out[RightTop])
}

func TestProjectAtSpawn(t *testing.T) {
	q, ok := Project(DefaultWall(), player.Start(), trig.New(), DefaultViewport())
	require.True(t, ok)

	assert.Equal(t, Quad{X1: 30, X2: 65, B1: 27, B2: 50, T1: 93, T2: 70}, q)
}

func TestProjectFacingAwayIsInvisible(t *testing.T) {
	s := player.Start()
	s.Heading = 180

	_, ok := Project(DefaultWall(), s, trig.New(), DefaultViewport())
	assert.False(t, ok)
}

func TestProjectStraddlingPlayerStaysFinite(t *testing.T) {
	s := player.Start()
	s.Y = 150 // wall runs from behind the player to in front of it

	c := ToCamera(DefaultWall(), s, trig.New())
	require.Less(t, c[LeftBottom].Y, NearPlane)
	require.GreaterOrEqual(t, c[RightBottom].Y, NearPlane)

	clipped, ok := ClipNear(c)
	require.True(t, ok)
	for i, v := range clipped {
		assert.GreaterOrEqual(t, v.Y, NearPlane, "corner %d", i)
	}

	q, ok := Project(DefaultWall(), s, trig.New(), DefaultViewport())
	require.True(t, ok)
	assert.Less(t, q.X1, q.X2)
}

func TestToScreenGuardsZeroDepth(t *testing.T) {
	var c [4]Vertex
	assert.NotPanics(t, func() {
		ToScreen(c, DefaultViewport())
	})
}
