// Package framebuffer provides the fixed-size RGBA pixel buffer the wall is
// rasterized into, plus the static colour table.
//
// Coordinates have a bottom-left origin: y grows upward, so a point higher in
// the world lands on a larger y. Rows are stored top row first so that Bytes
// and Image can be handed straight to top-left presenters.
package framebuffer

import (
	"bytes"
	"image"
	"image/color"
)

// BytesPerPixel is the number of colour channels stored per pixel.
const BytesPerPixel = 4

// Palette is the fixed colour table.
var Palette = [9]color.RGBA{
	{255, 255, 0, 255},
	{160, 160, 0, 255},
	{0, 255, 0, 255},
	{0, 160, 0, 255},
	{0, 255, 255, 255},
	{0, 160, 160, 255},
	{160, 100, 0, 255},
	{110, 50, 0, 255},
	{0, 60, 130, 255},
}

var (
	// WallColor fills the wall.
	WallColor = Palette[0]
	// Background clears each frame.
	Background = Palette[8]
)

// Framebuffer is a width x height RGBA pixel buffer.
type Framebuffer struct {
	width  int
	height int
	pix    []byte
}

// New allocates a framebuffer. Non-positive dimensions yield an empty buffer.
func New(width, height int) *Framebuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Clear fills every pixel with c.
func (f *Framebuffer) Clear(c color.RGBA) {
	if len(f.pix) == 0 {
		return
	}
	f.pix[0], f.pix[1], f.pix[2], f.pix[3] = c.R, c.G, c.B, c.A
	for i := BytesPerPixel; i < len(f.pix); i *= 2 {
		copy(f.pix[i:], f.pix[:i])
	}
}

// Set writes c at (x, y). Coordinates outside the buffer are ignored.
func (f *Framebuffer) Set(x, y int, c color.RGBA) {
	i, ok := f.offset(x, y)
	if !ok {
		return
	}
	f.pix[i+0] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}

// At returns the pixel at (x, y), or transparent black outside the buffer.
func (f *Framebuffer) At(x, y int) color.RGBA {
	i, ok := f.offset(x, y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]}
}

// Bytes returns the raw pixel memory, top row first. Callers must not keep it
// past the current frame.
func (f *Framebuffer) Bytes() []byte {
	return f.pix
}

// Image returns a top-left origin copy of the frame.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.pix)
	return img
}

// Equal reports whether both buffers have the same size and contents.
func (f *Framebuffer) Equal(other *Framebuffer) bool {
	return f.width == other.width && f.height == other.height && bytes.Equal(f.pix, other.pix)
}

// Count returns how many pixels equal c.
func (f *Framebuffer) Count(c color.RGBA) int {
	n := 0
	for i := 0; i+3 < len(f.pix); i += BytesPerPixel {
		if f.pix[i] == c.R && f.pix[i+1] == c.G && f.pix[i+2] == c.B && f.pix[i+3] == c.A {
			n++
		}
	}
	return n
}

func (f *Framebuffer) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, false
	}
	row := f.height - 1 - y
	return (row*f.width + x) * BytesPerPixel, true
}
