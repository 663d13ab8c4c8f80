package headless

import (
	"fmt"
	"strings"

	"chosenoffset.com/wallview/internal/render"
)

// Script is a sequence of ticks, each holding the keys pressed for that tick.
type Script [][]render.Key

// ParseScript reads a comma separated list of ticks. Keys within a tick are
// joined with '+', e.g. "w,w,a+m,,period". An empty tick is idle. The literal
// keys ',' and '.' are spelled "comma" and "period".
func ParseScript(text string) (Script, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	var script Script
	for i, tick := range strings.Split(text, ",") {
		tick = strings.TrimSpace(tick)
		if tick == "" {
			script = append(script, nil)
			continue
		}

		var keys []render.Key
		for _, name := range strings.Split(tick, "+") {
			k, ok := render.ParseKey(strings.ToLower(strings.TrimSpace(name)))
			if !ok {
				return nil, fmt.Errorf("tick %d: unknown key %q", i, name)
			}
			keys = append(keys, k)
		}
		script = append(script, keys)
	}
	return script, nil
}

// ScriptInput replays a Script through the render.InputManager interface.
// Ticks past the end of the script wrap around; an empty script is idle.
type ScriptInput struct {
	script Script
	tick   int
}

// NewScriptInput returns an input manager positioned at the first tick.
func NewScriptInput(s Script) *ScriptInput {
	return &ScriptInput{script: s}
}

// Advance moves to the next tick.
func (s *ScriptInput) Advance() {
	s.tick++
}

func (s *ScriptInput) current() []render.Key {
	if len(s.script) == 0 {
		return nil
	}
	return s.script[s.tick%len(s.script)]
}

// IsKeyPressed reports whether key is held during the current tick.
func (s *ScriptInput) IsKeyPressed(key render.Key) bool {
	for _, k := range s.current() {
		if k == key {
			return true
		}
	}
	return false
}

// IsKeyJustPressed is the same as IsKeyPressed; scripts have no key history.
func (s *ScriptInput) IsKeyJustPressed(key render.Key) bool {
	return s.IsKeyPressed(key)
}
