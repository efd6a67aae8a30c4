package netserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/younwookim/fluxrunner/internal/application/netcode"
	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
)

func testLevels() system.StaticLevels {
	return system.StaticLevels{
		"room": {
			Name: "room",
			Tile: config.TileConfig{Width: 32, Height: 32},
			Rows: []string{
				"##########",
				"#........#",
				"#........#",
				"#........#",
				"##########",
			},
			PlayerStart: config.PointConfig{X: 100, Y: 90},
		},
	}
}

func newSession() (*system.Session, error) {
	return system.NewSession(system.NewLevelManager(testLevels()), system.DefaultTuning(), "room")
}

func startServer(t *testing.T, factory SessionFactory) (*Server, string) {
	t.Helper()
	srv := New(factory, zaptest.NewLogger(t))
	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestServer_PredictionRoundTrip(t *testing.T) {
	srv, url := startServer(t, newSession)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer client.Close()

	hello := client.Hello()
	_, err = uuid.Parse(hello.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "room", hello.Snapshot.Level)
	assert.Eventually(t, func() bool { return srv.Connections() == 1 }, time.Second, 10*time.Millisecond)

	local, err := newSession()
	require.NoError(t, err)
	require.NoError(t, netcode.Restore(local, hello.Snapshot))
	pred := netcode.NewPredictor(local)

	go func() { _ = client.Run(ctx) }()

	const ticks = 20
	for i := 0; i < ticks; i++ {
		in := system.InputState{Right: i < 10, Left: i >= 10, Jump: true, JumpPressed: i == 12}
		msg, _, err := pred.Step(in)
		require.NoError(t, err)
		require.NoError(t, client.SendInput(msg))
	}

	var last netcode.StateMessage
	for last.AckTick < ticks {
		select {
		case st, ok := <-client.States():
			require.True(t, ok, "state stream closed early")
			rewound, err := pred.Reconcile(st)
			require.NoError(t, err)
			assert.False(t, rewound, "tick %d", st.AckTick)
			last = st
		case <-ctx.Done():
			t.Fatal("timed out waiting for states")
		}
	}

	assert.Zero(t, pred.Pending())
	assert.Equal(t, last.Snapshot.Checksum(), netcode.Capture(local).Checksum())
}

func TestServer_ClientDisconnect(t *testing.T) {
	srv, url := startServer(t, newSession)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return srv.Connections() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, client.Close())
	assert.Eventually(t, func() bool { return srv.Connections() == 0 }, time.Second, 10*time.Millisecond)
}

func TestServer_CloseDisconnectsClients(t *testing.T) {
	srv, url := startServer(t, newSession)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer client.Close()

	done := make(chan error, 1)
	go func() { done <- client.Run(ctx) }()

	srv.Close()
	assert.Zero(t, srv.Connections())

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("client did not notice the shutdown")
	}

	_, err = Dial(ctx, url, zaptest.NewLogger(t))
	assert.Error(t, err, "no new connections after close")
}

func TestServer_FactoryError(t *testing.T) {
	_, url := startServer(t, func() (*system.Session, error) {
		return nil, errors.New("no levels")
	})

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_IgnoresGarbage(t *testing.T) {
	_, url := startServer(t, newSession)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer client.Close()
	go func() { _ = client.Run(ctx) }()

	client.writeMu.Lock()
	require.NoError(t, client.conn.WriteMessage(websocket.BinaryMessage, []byte("not msgpack")))
	client.writeMu.Unlock()

	require.NoError(t, client.SendInput(netcode.InputMessage{Tick: 3}))
	select {
	case st := <-client.States():
		assert.Equal(t, uint64(3), st.AckTick)
	case <-ctx.Done():
		t.Fatal("timed out")
	}
}

func TestServer_DropsClientTooFarAhead(t *testing.T) {
	srv, url := startServer(t, newSession)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer client.Close()
	done := make(chan error, 1)
	go func() { done <- client.Run(ctx) }()

	require.NoError(t, client.SendInput(netcode.InputMessage{Tick: 1 << 40}))
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("connection stayed open")
	}
	assert.Eventually(t, func() bool { return srv.Connections() == 0 }, 2*time.Second, 10*time.Millisecond)
}
