package netserver

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/fluxrunner/internal/application/netcode"
	"github.com/younwookim/fluxrunner/internal/application/system"
)

const (
	writeWait   = 5 * time.Second
	outboxDepth = 32
)

// SessionFactory builds a fresh session for each connection
type SessionFactory func() (*system.Session, error)

// Server hosts one authoritative session per websocket connection
type Server struct {
	logger   *zap.Logger
	factory  SessionFactory
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	conns map[uuid.UUID]*websocket.Conn
}

// New creates a server
func New(factory SessionFactory, logger *zap.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		logger:  logger,
		factory: factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		ctx:    ctx,
		cancel: cancel,
		conns:  make(map[uuid.UUID]*websocket.Conn),
	}
}

// ServeHTTP upgrades the request and serves the connection until it closes
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.ctx.Err() != nil {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}

	sess, err := s.factory()
	if err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.New()
	log := s.logger.With(zap.String("conn", id.String()), zap.String("remote", r.RemoteAddr))
	if !s.track(id, conn) {
		_ = conn.Close()
		return
	}
	defer s.untrack(id)

	log.Info("client connected", zap.String("level", sess.Level().Name))
	err = s.serve(s.ctx, conn, id, netcode.NewAuthority(sess), log)
	switch {
	case err == nil, errors.Is(err, context.Canceled),
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		log.Info("client disconnected", zap.Uint64("tick", sess.Tick()))
	default:
		log.Warn("connection ended", zap.Error(err), zap.Uint64("tick", sess.Tick()))
	}
}

func (s *Server) serve(ctx context.Context, conn *websocket.Conn, id uuid.UUID, auth *netcode.Authority, log *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	outbox := make(chan netcode.Envelope, outboxDepth)
	outbox <- netcode.NewHello(id.String(), netcode.Capture(auth.Session()))

	// read pump
	g.Go(func() error {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return err
			}
			env, err := netcode.DecodeEnvelope(data)
			if err != nil {
				log.Debug("dropping message", zap.Error(err))
				continue
			}
			if env.Kind != netcode.KindInput {
				continue
			}

			st, ok, err := auth.Apply(*env.Input)
			if err != nil {
				return err
			}
			if !ok {
				log.Debug("stale input", zap.Uint64("tick", env.Input.Tick))
				continue
			}
			select {
			case outbox <- netcode.NewState(st):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	// write pump
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case env := <-outbox:
				data, err := env.Encode()
				if err != nil {
					return err
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait))
		return conn.Close()
	})

	return g.Wait()
}

func (s *Server) track(id uuid.UUID, conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	s.wg.Add(1)
	s.conns[id] = conn
	return true
}

func (s *Server) untrack(id uuid.UUID) {
	s.mu.Lock()
	delete(s.conns, id)
	s.mu.Unlock()
	s.wg.Done()
}

// Connections returns the number of open connections
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Close disconnects every client and waits for their handlers to return
func (s *Server) Close() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}
