package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/wallview/internal/game"
	"chosenoffset.com/wallview/internal/headless"
	ebitenrender "chosenoffset.com/wallview/internal/render/ebiten"
	"chosenoffset.com/wallview/internal/render/terminal"
	"chosenoffset.com/wallview/internal/simulation"
)

var CLI struct {
	Debug  bool   `help:"Whether to enable debug logging."`
	Config string `help:"YAML configuration file." short:"c" type:"path"`

	Run struct {
	} `cmd:"" default:"1" help:"Open a window and render the wall."`

	Term struct {
	} `cmd:"" help:"Render the wall in the terminal."`

	Snapshot struct {
		Out   string `help:"PNG file to write." short:"o" default:"wall.png" type:"path"`
		Ticks int    `help:"Number of ticks to simulate." default:"1"`
		Keys  string `help:"Per-tick keys, e.g. 'w,w,a+m,,period'."`
	} `cmd:"" help:"Simulate without a window and write the last frame to a PNG."`

	PrintConfig struct {
	} `cmd:"" name:"config" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("wallview"),
		kong.Description("a single-wall pseudo-3D renderer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "run":
		err = runCommand()
	case "term":
		err = termCommand()
	case "snapshot":
		err = snapshotCommand()
	case "config":
		err = configCommand()
	}
	if err != nil {
		writeError(err)
	}
}

func loadConfig() (*simulation.Config, error) {
	cfg, err := simulation.LoadConfig(CLI.Config)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("width", cfg.Display.Width).
		Int("height", cfg.Display.Height).
		Int("scale", cfg.Display.Scale).
		Int("tps", cfg.Display.TPS).
		Msg("config loaded")
	return cfg, nil
}

func runCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize the renderer backend (ebiten)
	g := game.New(cfg)
	g.Renderer = ebitenrender.NewRenderer()
	g.InputMgr = ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Set up the window
	engine.SetWindowSize(cfg.Display.Width*cfg.Display.Scale, cfg.Display.Height*cfg.Display.Scale)
	engine.SetWindowTitle(cfg.Display.Title)
	engine.SetWindowResizable(false)
	engine.SetTPS(cfg.Display.TPS)

	log.Info().Msg("starting window")
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("window loop failed: %w", err)
	}
	return nil
}

func termCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	// The screen owns the terminal while it is active.
	prev := log.Logger
	log.Logger = zerolog.Nop()
	defer func() { log.Logger = prev }()

	engine := terminal.NewEngine(screen, cfg.Display.TPS)
	g := game.New(cfg)
	g.InputMgr = engine.Input()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = engine.Run(ctx, g)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func snapshotCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	script, err := headless.ParseScript(CLI.Snapshot.Keys)
	if err != nil {
		return fmt.Errorf("invalid --keys: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, err := headless.Run(ctx, cfg, script, CLI.Snapshot.Ticks)
	if err != nil {
		return err
	}

	log.Info().
		Uint64("ticks", g.Ticks).
		Int("x", g.Player.X).
		Int("y", g.Player.Y).
		Int("heading", g.Player.Heading).
		Msg("simulation finished")

	return headless.WritePNG(CLI.Snapshot.Out, g.Frame, cfg.Display.Scale)
}

func configCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
