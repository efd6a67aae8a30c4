package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/fluxrunner/cmd/game/configs"
	"github.com/younwookim/fluxrunner/internal/application/game"
	"github.com/younwookim/fluxrunner/internal/application/replay"
	"github.com/younwookim/fluxrunner/internal/application/scene/playing"
	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
	"github.com/younwookim/fluxrunner/internal/infrastructure/ebitenio"
	"github.com/younwookim/fluxrunner/internal/infrastructure/logging"
)

type options struct {
	configDir string
	level     string
	record    string
	replay    string
	verify    string
	logLevel  string
	dev       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.StringVar(&opts.level, "level", "", "Start level (default: world.startLevel)")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recorded replay")
	flag.StringVar(&opts.verify, "verify", "", "Verify a replay headless and exit")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.dev, "dev", false, "Human-readable development logging")
	flag.Parse()

	logger, err := logging.New(opts.logLevel, opts.dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func run(opts options, logger *zap.Logger) error {
	loader := openLoader(opts.configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}
	newSession := system.NewSessionFactory(system.NewLevelManager(loader), system.TuningFromConfig(cfg))

	if opts.verify != "" {
		return verifyReplay(opts.verify, newSession, logger)
	}

	start := cfg.Physics.World.StartLevel
	if opts.level != "" {
		start = opts.level
	}

	sceneOpts := playing.Options{Logger: logger, RecordPath: opts.record}
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		start = data.Level
		sceneOpts.Replay = replay.NewReplayer(*data)
		sceneOpts.RecordPath = ""
	}

	session, err := newSession(start)
	if err != nil {
		return err
	}

	g := game.New(playing.New(cfg, session, sceneOpts))
	defer g.Close()

	display := cfg.Physics.Display
	runner := ebitenio.NewRunner(g, ebitenio.NewKeyboard(ebitenio.DefaultBinding()), display.ScreenWidth, display.ScreenHeight)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(runner); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// openLoader reads configs from dir, or the embedded set when dir is empty
func openLoader(dir string) *config.Loader {
	if dir == "" {
		return config.NewFSLoader(configs.FS, "configs")
	}
	return config.NewLoader(dir)
}
