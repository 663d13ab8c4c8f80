package game

import (
	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/render"
)

// PollInput snapshots the movement intents held this tick.
func PollInput(m render.InputManager) player.Input {
	return player.Input{
		Forward:     m.IsKeyPressed(render.KeyW),
		Backward:    m.IsKeyPressed(render.KeyS),
		TurnLeft:    m.IsKeyPressed(render.KeyA),
		TurnRight:   m.IsKeyPressed(render.KeyD),
		StrafeLeft:  m.IsKeyPressed(render.KeyComma),
		StrafeRight: m.IsKeyPressed(render.KeyPeriod),
		Modifier:    m.IsKeyPressed(render.KeyM),
	}
}
