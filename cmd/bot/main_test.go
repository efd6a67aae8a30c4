package main

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/younwookim/fluxrunner/cmd/game/configs"
	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
	"github.com/younwookim/fluxrunner/internal/infrastructure/netserver"
)

func TestScript(t *testing.T) {
	assert.True(t, script(0).JumpPressed)
	assert.True(t, script(0).Right)
	assert.False(t, script(1).JumpPressed)
	assert.True(t, script(210).Left)
	assert.False(t, script(190).Right)
}

func TestPlay(t *testing.T) {
	loader := config.NewFSLoader(configs.FS, "configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	newSession := system.NewSessionFactory(system.NewLevelManager(loader), system.TuningFromConfig(cfg))

	srv := netserver.New(func() (*system.Session, error) { return newSession("level1") }, zaptest.NewLogger(t))
	ts := httptest.NewServer(srv)
	defer ts.Close()
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	assert.NoError(t, play(ctx, url, 120, 600, zaptest.NewLogger(t)))

	var playErr error
	require.NotPanics(t, func() { playErr = play(ctx, url, 10, 0, zaptest.NewLogger(t)) })
	assert.Error(t, playErr, "zero ticks per second")
}
