package headless

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wallview/internal/framebuffer"
	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/render"
	"chosenoffset.com/wallview/internal/simulation"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("w, w ,a+M,,comma+.")
	require.NoError(t, err)

	assert.Equal(t, Script{
		{render.KeyW},
		{render.KeyW},
		{render.KeyA, render.KeyM},
		nil,
		{render.KeyComma, render.KeyPeriod},
	}, s)

	s, err = ParseScript("  ")
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = ParseScript("w,q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick 1")
}

func TestScriptInputWraps(t *testing.T) {
	in := NewScriptInput(Script{{render.KeyW}, nil})

	assert.True(t, in.IsKeyPressed(render.KeyW))
	in.Advance()
	assert.False(t, in.IsKeyPressed(render.KeyW))
	in.Advance()
	assert.True(t, in.IsKeyJustPressed(render.KeyW))

	assert.False(t, NewScriptInput(nil).IsKeyPressed(render.KeyW))
}

func TestRunAppliesScript(t *testing.T) {
	script, err := ParseScript("w,d")
	require.NoError(t, err)

	g, err := Run(context.Background(), simulation.DefaultConfig(), script, 4)
	require.NoError(t, err)

	assert.Equal(t, uint64(4), g.Ticks)
	assert.Equal(t, 8, g.Player.Heading)
}

func TestRunStopsOnEscape(t *testing.T) {
	script, err := ParseScript("w,escape,w")
	require.NoError(t, err)

	g, err := Run(context.Background(), simulation.DefaultConfig(), script, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), g.Ticks)
	assert.Equal(t, player.Start().Y+10, g.Player.Y)
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, simulation.DefaultConfig(), nil, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWritePNG(t *testing.T) {
	g, err := Run(context.Background(), simulation.DefaultConfig(), nil, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, WritePNG(path, g.Frame, 4))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())

	// Framebuffer (30,27) is wall; top-left row is 119-27 = 92, scaled x4.
	r, gg, b, _ := img.At(30*4+1, 92*4+1).RGBA()
	wall := framebuffer.WallColor
	assert.Equal(t, uint32(wall.R)*0x101, r)
	assert.Equal(t, uint32(wall.G)*0x101, gg)
	assert.Equal(t, uint32(wall.B)*0x101, b)
}

func TestUpscaleOneIsCopy(t *testing.T) {
	fb := framebuffer.New(4, 4)
	fb.Clear(framebuffer.Background)
	img := Upscale(fb, 1)
	assert.Equal(t, fb.Bytes(), img.Pix)
}
