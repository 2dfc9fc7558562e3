package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pitch/configs"
	"github.com/younwookim/pitch/internal/application/game"
	"github.com/younwookim/pitch/internal/application/scene/playing"
	"github.com/younwookim/pitch/internal/infrastructure/config"
	"github.com/younwookim/pitch/internal/infrastructure/logging"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json or replay.msgpack)")
	seedFlag := flag.Int64("seed", 0, "Match seed (0 = seed from the clock)")
	formationFlag := flag.String("formation", "433", "Formation name under formations/")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	aiFlag := flag.Bool("ai", false, "Let the AI control both teams")
	minutesFlag := flag.Float64("minutes", 0, "Match length in minutes (0 = unlimited)")
	levelFlag := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(os.Stderr, "pitch", *levelFlag)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}

	cfg, err := loadConfig(*configFlag, *formationFlag)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	display := cfg.Match.Display

	opts := []playing.Option{
		playing.WithLogger(logger),
		playing.WithRecording(*recordFlag),
	}
	if *seedFlag != 0 {
		opts = append(opts, playing.WithSeed(*seedFlag))
	}
	if *aiFlag {
		opts = append(opts, playing.WithAIOnly())
	}
	if *minutesFlag > 0 {
		opts = append(opts, playing.WithDuration(uint64(*minutesFlag*60*float64(display.Framerate))))
	}

	match, err := playing.New(cfg, opts...)
	if err != nil {
		logger.Fatal("failed to create match", "err", err)
	}

	g := game.New(match, display.ScreenWidth, display.ScreenHeight, game.WithLogger(logger))
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Pitch")
	ebiten.SetTPS(display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}

// loadConfig reads a config directory, or the embedded configs when dir is empty
func loadConfig(dir, formation string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll(formation)
	}
	return config.NewFSLoader(configs.FS, "configs").LoadAll(formation)
}
