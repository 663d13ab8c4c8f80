// Package terminal presents frames in a terminal through tcell. Each cell
// shows two vertically stacked pixels using the upper half block glyph.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/wallview/internal/render"
)

// upperHalf draws the upper pixel as foreground over the lower as background.
const upperHalf = '▀'

// Frame is what the terminal loop drives: one Update per tick and a top-left
// origin snapshot to present afterwards.
type Frame interface {
	Update() error
	Snapshot() *image.RGBA
}

// Engine runs a Frame at a fixed tick rate on a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	tps    int
}

// NewEngine wraps an initialised screen. The caller owns Init and Fini.
func NewEngine(screen tcell.Screen, tps int) *Engine {
	if tps <= 0 {
		tps = 20
	}
	screen.HideCursor()
	return &Engine{
		screen: screen,
		input:  NewInputManager(DefaultHoldTicks),
		tps:    tps,
	}
}

// Input returns the input manager fed by this engine's key events.
func (e *Engine) Input() *InputManager {
	return e.input
}

// Run ticks f until it returns render.ErrQuit, fails, or ctx is done.
// A quit request is not an error.
func (e *Engine) Run(ctx context.Context, f Frame) error {
	go e.pollEvents()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := f.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return fmt.Errorf("terminal tick failed: %w", err)
			}
			e.input.Advance()
			Present(e.screen, f.Snapshot())
			e.screen.Show()
		}
	}
}

// pollEvents feeds key events into the input manager until the screen is
// finalised.
func (e *Engine) pollEvents() {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			e.input.Press(ev.Key(), ev.Rune())
		case *tcell.EventResize:
			w, h := ev.Size()
			log.Debug().Int("cols", w).Int("rows", h).Msg("terminal resized")
			e.screen.Sync()
		}
	}
}

// Present draws img into the screen, two pixel rows per text row. Pixels that
// fall outside the screen are dropped.
func Present(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	b := img.Bounds()

	for cy := 0; cy*2 < b.Dy() && cy < rows; cy++ {
		for cx := 0; cx < b.Dx() && cx < cols; cx++ {
			top := img.RGBAAt(b.Min.X+cx, b.Min.Y+cy*2)
			bottom := top
			if cy*2+1 < b.Dy() {
				bottom = img.RGBAAt(b.Min.X+cx, b.Min.Y+cy*2+1)
			}

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}
