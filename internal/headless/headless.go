// Package headless runs the simulation without a window and writes frames to
// PNG files.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"chosenoffset.com/wallview/internal/framebuffer"
	"chosenoffset.com/wallview/internal/game"
	"chosenoffset.com/wallview/internal/render"
	"chosenoffset.com/wallview/internal/simulation"
)

// Run builds a game from cfg and advances it ticks times, feeding input from
// script. It stops early when the script presses escape or ctx is cancelled.
// There is no wall-clock pacing.
func Run(ctx context.Context, cfg *simulation.Config, script Script, ticks int) (*game.Game, error) {
	g := game.New(cfg)
	in := NewScriptInput(script)
	g.InputMgr = in

	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return g, err
		}
		if err := g.Update(); err != nil {
			if errors.Is(err, render.ErrQuit) {
				break
			}
			return g, err
		}
		in.Advance()
	}

	log.Debug().
		Uint64("ticks", g.Ticks).
		Int("x", g.Player.X).
		Int("y", g.Player.Y).
		Int("z", g.Player.Z).
		Int("heading", g.Player.Heading).
		Int("lean", g.Player.Lean).
		Msg("headless run finished")

	return g, nil
}

// Upscale returns the frame enlarged by an integer factor with nearest
// neighbour sampling.
func Upscale(fb *framebuffer.Framebuffer, scale int) *image.RGBA {
	src := fb.Image()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG writes the frame, upscaled by scale, to path.
func WritePNG(path string, fb *framebuffer.Framebuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	if err := png.Encode(f, Upscale(fb, scale)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Info().Str("path", path).Int("scale", scale).Msg("snapshot written")
	return nil
}
