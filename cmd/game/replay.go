package main

import (
	"go.uber.org/zap"

	"github.com/younwookim/fluxrunner/internal/application/replay"
)

// verifyReplay plays a replay file headless and checks it reproduces
func verifyReplay(path string, newSession replay.SessionFactory, logger *zap.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	sum, err := replay.Verify(*data, newSession)
	if err != nil {
		return err
	}

	logger.Info("replay verified",
		zap.String("path", path),
		zap.String("level", data.Level),
		zap.Int("frames", len(data.Frames)),
		zap.String("checksum", replay.FormatChecksum(sum)))
	return nil
}
