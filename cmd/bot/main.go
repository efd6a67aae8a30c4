// Command bot connects to a server, runs a predicted session with a
// scripted input pattern, and reports how often the server disagreed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/fluxrunner/cmd/game/configs"
	"github.com/younwookim/fluxrunner/internal/application/netcode"
	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
	"github.com/younwookim/fluxrunner/internal/infrastructure/logging"
	"github.com/younwookim/fluxrunner/internal/infrastructure/netserver"
)

func main() {
	url := flag.String("url", "ws://localhost:8080/ws", "Server websocket URL")
	ticks := flag.Int("ticks", 600, "Ticks to play")
	tps := flag.Int("tps", 60, "Ticks per second")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	if *tps <= 0 {
		fmt.Fprintln(os.Stderr, "-tps must be greater than 0")
		os.Exit(2)
	}

	logger, err := logging.New(*logLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := play(ctx, *url, *ticks, *tps, logger); err != nil {
		logger.Fatal("bot failed", zap.Error(err))
	}
}

// script walks right, hops every second and turns back every few seconds
func script(tick int) system.InputState {
	return system.InputState{
		Right:       tick%240 < 180,
		Left:        tick%240 >= 200,
		Jump:        tick%60 < 15,
		JumpPressed: tick%60 == 0,
	}
}

func play(ctx context.Context, url string, ticks, tps int, logger *zap.Logger) error {
	loader := config.NewFSLoader(configs.FS, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}
	newSession := system.NewSessionFactory(system.NewLevelManager(loader), system.TuningFromConfig(cfg))

	client, err := netserver.Dial(ctx, url, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	hello := client.Hello()
	local, err := newSession(hello.Snapshot.Level)
	if err != nil {
		return err
	}
	if err := netcode.Restore(local, hello.Snapshot); err != nil {
		return err
	}
	pred := netcode.NewPredictor(local)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- client.Run(runCtx) }()

	rewinds, err := drive(ctx, client, pred, ticks, tps, logger)
	cancel()
	<-done
	if err != nil {
		return err
	}

	logger.Info("done",
		zap.Uint64("tick", local.Tick()),
		zap.String("level", local.Level().Name),
		zap.Int("rewinds", rewinds),
		zap.Int("pending", pred.Pending()))
	return nil
}

func drive(ctx context.Context, client *netserver.Client, pred *netcode.Predictor, ticks, tps int, logger *zap.Logger) (int, error) {
	if tps <= 0 {
		return 0, fmt.Errorf("ticks per second must be positive, got %d", tps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	rewinds := 0
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return rewinds, nil
		case <-ticker.C:
		}

		for drained := false; !drained; {
			select {
			case st, ok := <-client.States():
				if !ok {
					return rewinds, fmt.Errorf("server closed the connection at tick %d", i)
				}
				rewound, err := pred.Reconcile(st)
				if err != nil {
					return rewinds, err
				}
				if rewound {
					rewinds++
					logger.Debug("rewound", zap.Uint64("ack", st.AckTick))
				}
			default:
				drained = true
			}
		}

		msg, _, err := pred.Step(script(i))
		if err != nil {
			return rewinds, err
		}
		if err := client.SendInput(msg); err != nil {
			return rewinds, err
		}
	}
	return rewinds, nil
}
