package game

import (
	"image/color"

	"chosenoffset.com/wallview/internal/render"
)

// Underlay is cleared behind the frame. Any of it showing means the blit is off.
var Underlay = color.RGBA{255, 0, 0, 255}

// Draw uploads the framebuffer and blits it onto screen, upscaled by Scale.
func (g *Game) Draw(screen render.Image) {
	if g.Renderer == nil {
		return
	}

	w, h := g.Frame.Width(), g.Frame.Height()

	// Ensure the frame texture exists and is the right size
	if g.FrameImg == nil || needsResize(g.FrameImg, w, h) {
		if g.FrameImg != nil {
			g.FrameImg.Dispose()
		}
		g.FrameImg = g.Renderer.NewImage(w, h)
	}
	g.FrameImg.WritePixels(g.Frame.Bytes())

	screen.Fill(Underlay)

	opts := &render.DrawImageOptions{}
	if render.NewGeoM != nil {
		opts.GeoM = render.NewGeoM()
		s := float64(max(g.Scale, 1))
		opts.GeoM.Scale(s, s)
	}
	screen.DrawImage(g.FrameImg, opts)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}
