package netserver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/fluxrunner/internal/application/netcode"
)

// Client is a connection to a Server
type Client struct {
	conn   *websocket.Conn
	hello  netcode.HelloMessage
	logger *zap.Logger
	states chan netcode.StateMessage

	writeMu sync.Mutex
}

// Dial connects to url and waits for the server's hello
func Dial(ctx context.Context, url string, logger *zap.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read hello: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})

	env, err := netcode.DecodeEnvelope(data)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if env.Kind != netcode.KindHello {
		conn.Close()
		return nil, fmt.Errorf("%w: expected hello, got %s", netcode.ErrMalformed, env.Kind)
	}

	logger.Debug("connected", zap.String("session", env.Hello.SessionID), zap.String("level", env.Hello.Snapshot.Level))
	return &Client{
		conn:   conn,
		hello:  *env.Hello,
		logger: logger,
		states: make(chan netcode.StateMessage, outboxDepth),
	}, nil
}

// Hello returns the server's greeting
func (c *Client) Hello() netcode.HelloMessage {
	return c.hello
}

// SendInput sends one tick of input
func (c *Client) SendInput(msg netcode.InputMessage) error {
	data, err := netcode.NewInput(msg).Encode()
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

// States delivers server states; it is closed when Run returns
func (c *Client) States() <-chan netcode.StateMessage {
	return c.states
}

// Run reads server messages until ctx is done or the connection drops
func (c *Client) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(c.states)
		for {
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				return err
			}
			env, err := netcode.DecodeEnvelope(data)
			if err != nil {
				c.logger.Debug("dropping message", zap.Error(err))
				continue
			}
			if env.Kind != netcode.KindState {
				continue
			}
			select {
			case c.states <- *env.State:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		return c.conn.Close()
	})

	err := g.Wait()
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return nil
	}
	return err
}

// Close says goodbye and closes the connection
func (c *Client) Close() error {
	c.writeMu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.writeMu.Unlock()
	return c.conn.Close()
}
