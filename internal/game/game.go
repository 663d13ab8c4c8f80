package game

import (
	"image"

	"github.com/rs/zerolog/log"

	"chosenoffset.com/wallview/internal/framebuffer"
	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/projection"
	"chosenoffset.com/wallview/internal/raster"
	"chosenoffset.com/wallview/internal/render"
	"chosenoffset.com/wallview/internal/simulation"
	"chosenoffset.com/wallview/internal/trig"
)

// Game holds all simulation state and advances it one tick at a time.
type Game struct {
	Trig     *trig.Table
	Player   player.State
	Tuning   player.Tuning
	Wall     projection.Wall
	Viewport projection.Viewport
	Frame    *framebuffer.Framebuffer

	// Presentation, set by the host. Both may be nil for headless use.
	Renderer render.Renderer
	InputMgr render.InputManager
	Scale    int

	FrameImg render.Image

	// Ticks counts completed Tick calls.
	Ticks uint64

	visible bool
	quad    projection.Quad
}

// New builds a game from cfg and renders the first frame.
func New(cfg *simulation.Config) *Game {
	vp := cfg.Viewport()
	g := &Game{
		Trig:     trig.New(),
		Player:   cfg.StartState(),
		Tuning:   cfg.Tuning(),
		Wall:     projection.DefaultWall(),
		Viewport: vp,
		Frame:    framebuffer.New(vp.Width, vp.Height),
		Scale:    cfg.Display.Scale,
	}
	g.Render()
	return g
}

// Tick applies one tick of input and renders the resulting frame.
func (g *Game) Tick(in player.Input) {
	g.Player = player.Move(g.Player, g.Trig, in, g.Tuning)
	g.Ticks++

	if !in.Idle() {
		log.Trace().
			Interface("input", in).
			Interface("player", g.Player).
			Msg("moved")
	}

	prev := g.visible
	if visible := g.Render(); visible != prev {
		log.Debug().
			Bool("visible", visible).
			Int("x", g.Player.X).
			Int("y", g.Player.Y).
			Int("heading", g.Player.Heading).
			Uint64("ticks", g.Ticks).
			Msg("wall visibility changed")
	}
}

// Render redraws the frame for the current state without moving the player.
// It reports whether the wall was drawn.
func (g *Game) Render() bool {
	g.Frame.Clear(framebuffer.Background)

	g.quad, g.visible = projection.Project(g.Wall, g.Player, g.Trig, g.Viewport)
	if g.visible {
		raster.DrawWall(g.Frame, g.quad, framebuffer.WallColor)
	}
	return g.visible
}

// Quad returns the last projected wall and whether it was drawn.
func (g *Game) Quad() (projection.Quad, bool) {
	return g.quad, g.visible
}

// Snapshot returns a top-left origin copy of the current frame.
func (g *Game) Snapshot() *image.RGBA {
	return g.Frame.Image()
}

// Update handles one tick of host input.
func (g *Game) Update() error {
	if g.InputMgr == nil {
		g.Tick(player.Input{})
		return nil
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Info().Uint64("ticks", g.Ticks).Msg("quit requested")
		return render.ErrQuit
	}
	g.Tick(PollInput(g.InputMgr))
	return nil
}

// Layout returns the scaled window size so the frame is upscaled by Draw.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := max(g.Scale, 1)
	return g.Viewport.Width * s, g.Viewport.Height * s
}
