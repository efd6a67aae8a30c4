package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/fluxrunner/cmd/game/configs"
	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
	"github.com/younwookim/fluxrunner/internal/infrastructure/logging"
	"github.com/younwookim/fluxrunner/internal/infrastructure/netserver"
)

const shutdownTimeout = 5 * time.Second

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	level := flag.String("level", "", "Level every session starts on (default: world.startLevel)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dev := flag.Bool("dev", false, "Human-readable development logging")
	flag.Parse()

	logger, err := logging.New(*logLevel, *dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, *addr, *configDir, *level, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func serve(ctx context.Context, addr, configDir, level string, logger *zap.Logger) error {
	loader := config.NewFSLoader(configs.FS, "configs")
	if configDir != "" {
		loader = config.NewLoader(configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}
	if level == "" {
		level = cfg.Physics.World.StartLevel
	}

	newSession := system.NewSessionFactory(system.NewLevelManager(loader), system.TuningFromConfig(cfg))
	if _, err := newSession(level); err != nil {
		return fmt.Errorf("start level: %w", err)
	}

	game := netserver.New(func() (*system.Session, error) { return newSession(level) }, logger)
	mux := http.NewServeMux()
	mux.Handle("/ws", game)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, "ok %d\n", game.Connections())
	})
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr), zap.String("level", level))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		game.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
