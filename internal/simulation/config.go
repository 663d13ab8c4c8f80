// Package simulation provides configuration for the display, movement feel,
// spawn point and projection. Values are loaded from a YAML file layered over
// the built-in defaults.
package simulation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/projection"
)

// Config holds all simulation settings
type Config struct {
	// Output surface and pacing
	Display DisplayConfig `yaml:"display"`

	// Per-tick movement magnitudes
	Movement MovementConfig `yaml:"movement"`

	// Player spawn
	Start StartConfig `yaml:"start"`

	// Perspective constants
	Projection ProjectionConfig `yaml:"projection"`
}

// DisplayConfig defines the logical framebuffer and how it is presented
type DisplayConfig struct {
	Width  int    `yaml:"width"`  // Logical framebuffer width (e.g., 160)
	Height int    `yaml:"height"` // Logical framebuffer height (e.g., 120)
	Scale  int    `yaml:"scale"`  // Integer upscale for windows and snapshots
	TPS    int    `yaml:"tps"`    // Simulation ticks per second
	Title  string `yaml:"title"`  // Window title
}

// MovementConfig defines the movement feel
type MovementConfig struct {
	Step        float64 `yaml:"step"`         // World units per tick along the heading
	TurnDegrees int     `yaml:"turn_degrees"` // Heading change per tick
	LeanStep    int     `yaml:"lean_step"`    // Lean change per tick with the modifier held
	HeightStep  int     `yaml:"height_step"`  // Height change per tick with the modifier held
}

// StartConfig defines where the player spawns
type StartConfig struct {
	X       int `yaml:"x"`
	Y       int `yaml:"y"`
	Z       int `yaml:"z"`
	Heading int `yaml:"heading"`
	Lean    int `yaml:"lean"`
}

// ProjectionConfig defines the perspective divide
type ProjectionConfig struct {
	Focal int `yaml:"focal"` // Projection constant (e.g., 200)
}

// DefaultConfig returns the reference settings
func DefaultConfig() *Config {
	tun := player.DefaultTuning()
	start := player.Start()
	vp := projection.DefaultViewport()

	return &Config{
		Display: DisplayConfig{
			Width:  vp.Width,
			Height: vp.Height,
			Scale:  4,
			TPS:    20,
			Title:  "Doom Engine",
		},
		Movement: MovementConfig{
			Step:        tun.Step,
			TurnDegrees: tun.TurnDegrees,
			LeanStep:    tun.LeanStep,
			HeightStep:  tun.HeightStep,
		},
		Start: StartConfig{
			X:       start.X,
			Y:       start.Y,
			Z:       start.Z,
			Heading: start.Heading,
			Lean:    start.Lean,
		},
		Projection: ProjectionConfig{
			Focal: vp.Focal,
		},
	}
}

// LoadConfig loads config from a YAML file. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings the renderer cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display tps must be positive, got %d", c.Display.TPS))
	}
	if c.Projection.Focal <= 0 {
		errs = append(errs, fmt.Errorf("projection focal must be positive, got %d", c.Projection.Focal))
	}
	return errors.Join(errs...)
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Viewport returns the projection viewport
func (c *Config) Viewport() projection.Viewport {
	return projection.Viewport{
		Width:  c.Display.Width,
		Height: c.Display.Height,
		Focal:  c.Projection.Focal,
	}
}

// Tuning returns the movement tuning
func (c *Config) Tuning() player.Tuning {
	return player.Tuning{
		Step:        c.Movement.Step,
		TurnDegrees: c.Movement.TurnDegrees,
		LeanStep:    c.Movement.LeanStep,
		HeightStep:  c.Movement.HeightStep,
	}
}

// StartState returns the spawn state with the heading normalized
func (c *Config) StartState() player.State {
	return player.State{
		X:       c.Start.X,
		Y:       c.Start.Y,
		Z:       c.Start.Z,
		Heading: player.NormalizeHeading(c.Start.Heading),
		Lean:    c.Start.Lean,
	}
}
